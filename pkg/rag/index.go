package rag

import (
	"math"
	"sort"

	"propai/pkg/apperr"
)

// Scored pairs a retrieved chunk with its distance to the query vector.
// Smaller is closer.
type Scored struct {
	Chunk    Chunk
	Distance float64
}

// Index is an immutable-after-build brute-force nearest-neighbor index.
// Build it once per upload; concurrent Nearest calls need no locking.
type Index struct {
	dim     int
	chunks  []Chunk
	vectors [][]float32
}

func BuildIndex(chunks []Chunk, vectors [][]float32) (*Index, error) {
	if len(chunks) != len(vectors) {
		return nil, apperr.New(apperr.Embedding, "got %d vectors for %d chunks", len(vectors), len(chunks))
	}
	dim := 0
	for i, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) == 0 || len(v) != dim {
			return nil, apperr.New(apperr.Embedding, "vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	return &Index{dim: dim, chunks: chunks, vectors: vectors}, nil
}

func (ix *Index) Len() int { return len(ix.chunks) }
func (ix *Index) Dim() int { return ix.dim }

// Nearest returns the min(k, Len) chunks closest to vec by cosine distance,
// sorted by non-decreasing distance. Ties keep original chunk order.
func (ix *Index) Nearest(vec []float32, k int) []Scored {
	if k <= 0 || ix.Len() == 0 {
		return nil
	}
	scored := make([]Scored, len(ix.chunks))
	for i := range ix.chunks {
		scored[i] = Scored{Chunk: ix.chunks[i], Distance: 1 - cosine(vec, ix.vectors[i])}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Distance < scored[j].Distance })
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
