package rag

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, ids ...string) *Index {
	chunks := make([]Chunk, len(ids))
	vecs := make([][]float32, len(ids))
	for i, id := range ids {
		chunks[i] = Chunk{ID: id, Ord: i}
		vecs[i] = []float32{1, 0}
	}
	ix, err := BuildIndex(chunks, vecs)
	require.NoError(t, err)
	return ix
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry(4, 0)
	_, ok := r.Get("missing.pdf")
	assert.False(t, ok)
}

func TestRegistryLatestWins(t *testing.T) {
	r := NewRegistry(4, 0)
	r.Put("a.pdf", mustIndex(t, "old_chunk_0"))
	r.Put("a.pdf", mustIndex(t, "new_chunk_0"))

	ix, ok := r.Get("a.pdf")
	require.True(t, ok)
	got := ix.Nearest([]float32{1, 0}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "new_chunk_0", got[0].Chunk.ID)
}

func TestRegistryTTLExpiry(t *testing.T) {
	r := NewRegistry(4, time.Minute)
	clock := time.Now()
	r.now = func() time.Time { return clock }

	r.Put("a.pdf", mustIndex(t, "c0"))
	clock = clock.Add(30 * time.Second)
	_, ok := r.Get("a.pdf") // refreshes TTL
	assert.True(t, ok)

	clock = clock.Add(61 * time.Second)
	_, ok = r.Get("a.pdf")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryCapacityEvictsLRU(t *testing.T) {
	r := NewRegistry(2, 0)
	clock := time.Now()
	r.now = func() time.Time { return clock }

	r.Put("a.pdf", mustIndex(t, "a0"))
	clock = clock.Add(time.Second)
	r.Put("b.pdf", mustIndex(t, "b0"))
	clock = clock.Add(time.Second)
	r.Get("a.pdf") // b is now least recently used
	clock = clock.Add(time.Second)
	r.Put("c.pdf", mustIndex(t, "c0"))

	_, okA := r.Get("a.pdf")
	_, okB := r.Get("b.pdf")
	_, okC := r.Get("c.pdf")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(32, 0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		name := fmt.Sprintf("f%d.pdf", i)
		ix := mustIndex(t, name+"_chunk_0")
		go func() {
			defer wg.Done()
			r.Put(name, ix)
		}()
		go func() {
			defer wg.Done()
			r.Get(name)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, r.Len())
}
