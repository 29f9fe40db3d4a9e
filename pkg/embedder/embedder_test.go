package embedder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propai/pkg/apperr"
)

func fakeBackend(t *testing.T, dim int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		type item struct {
			Embedding []float32 `json:"embedding"`
		}
		data := make([]item, len(req.Input))
		for i := range req.Input {
			v := make([]float32, dim)
			v[0] = float32(len(req.Input[i]))
			data[i] = item{Embedding: v}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestEmbedReturnsVectorPerInput(t *testing.T) {
	srv := fakeBackend(t, 4)
	defer srv.Close()

	c := New(srv.URL, "", "all-MiniLM-L6-v2", time.Second)
	vecs, err := c.Embed(context.Background(), []string{"a", "bb", "ccc"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	assert.Equal(t, float32(2), vecs[1][0])
	assert.Len(t, vecs[0], 4)
}

func TestEmbedBatchesLargeInputs(t *testing.T) {
	srv := fakeBackend(t, 2)
	defer srv.Close()

	c := New(srv.URL, "", "m", time.Second)
	c.batch = 2
	texts := []string{"1", "2", "3", "4", "5"}
	vecs, err := c.Embed(context.Background(), texts)
	require.NoError(t, err)
	assert.Len(t, vecs, 5)
}

func TestEmbedBackendErrorIsEmbeddingKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "", "m", time.Second)
	_, err := c.Embed(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Equal(t, apperr.Embedding, apperr.KindOf(err))
}

func TestEmbedUnconfiguredEndpoint(t *testing.T) {
	c := New("", "", "m", time.Second)
	_, err := c.Embed(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Equal(t, apperr.Embedding, apperr.KindOf(err))
}
