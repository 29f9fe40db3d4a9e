package ai

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

func TestParseLooseValidJSON(t *testing.T) {
	r := ParseLoose(`{"a": 1}`)
	require.True(t, r.Parsed())
	assert.JSONEq(t, `{"a": 1}`, string(r.JSON))
}

func TestParseLooseFencedJSON(t *testing.T) {
	r := ParseLoose("```json\n{\"novelty_percentage\": 70}\n```")
	require.True(t, r.Parsed())
	assert.JSONEq(t, `{"novelty_percentage": 70}`, string(r.JSON))
}

func TestParseLooseArray(t *testing.T) {
	r := ParseLoose(`Here you go: [{"line": 1, "message": "Abstract too short"}]`)
	require.True(t, r.Parsed())
	var issues []map[string]any
	require.NoError(t, json.Unmarshal(r.JSON, &issues))
	assert.Len(t, issues, 1)
}

func TestParseLoosePlainText(t *testing.T) {
	r := ParseLoose("I cannot produce JSON for this.")
	assert.False(t, r.Parsed())
	assert.Equal(t, "I cannot produce JSON for this.", r.Raw)
}

func TestParseLooseEmpty(t *testing.T) {
	r := ParseLoose("   \n ")
	assert.False(t, r.Parsed())
	assert.Empty(t, r.Raw)
}

func geminiStub(t *testing.T, text string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "nope", status)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGeminiGenerateTrimsText(t *testing.T) {
	srv := geminiStub(t, "  the answer \n", http.StatusOK)
	defer srv.Close()

	c := NewGemini(srv.URL, "k", "gemini-2.5-flash-lite", time.Second, 0)
	got, err := c.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "the answer", got)
}

func TestGeminiGenerateEmptyIsGenerationError(t *testing.T) {
	srv := geminiStub(t, "", http.StatusOK)
	defer srv.Close()

	c := NewGemini(srv.URL, "k", "m", time.Second, 0)
	_, err := c.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, apperr.Generation, apperr.KindOf(err))
}

func TestGeminiGenerateBackendFailure(t *testing.T) {
	srv := geminiStub(t, "", http.StatusTooManyRequests)
	defer srv.Close()

	c := NewGemini(srv.URL, "k", "m", time.Second, 0)
	_, err := c.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, apperr.Generation, apperr.KindOf(err))
}
