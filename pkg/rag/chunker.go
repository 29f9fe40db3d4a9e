// Package rag holds the retrieval pipeline: chunking, the in-memory
// vector index, and the per-file index registry.
package rag

import (
	"fmt"
	"strings"
)

// Chunk is the unit of retrieval: a window of page text with provenance.
type Chunk struct {
	ID     string `json:"id"` // {source}_chunk_{i}, unique per document
	Source string `json:"source"`
	Page   int    `json:"page"` // 1-based page the window starts on
	Ord    int    `json:"ord"`
	Text   string `json:"text"`
}

// SplitPages windows each page into chunks of at most size runes with the
// given overlap between consecutive windows. Blank pages contribute no
// chunks. The ordinal runs across the whole document so IDs stay unique.
func SplitPages(source string, pages []string, size, overlap int) []Chunk {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	step := size - overlap

	var chunks []Chunk
	ord := 0
	for pi, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		runes := []rune(page)
		for start := 0; start < len(runes); start += step {
			end := start + size
			if end > len(runes) {
				end = len(runes)
			}
			chunks = append(chunks, Chunk{
				ID:     fmt.Sprintf("%s_chunk_%d", source, ord),
				Source: source,
				Page:   pi + 1,
				Ord:    ord,
				Text:   string(runes[start:end]),
			})
			ord++
			if end == len(runes) {
				break
			}
		}
	}
	return chunks
}

// SplitText is SplitPages for a document without page structure.
func SplitText(source, text string, size, overlap int) []Chunk {
	return SplitPages(source, []string{text}, size, overlap)
}
