package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"propai/pkg/apperr"
)

const defaultBatch = 32

// Client talks to an OpenAI-compatible /v1/embeddings endpoint serving a
// fixed sentence-embedding model. One Client is shared by the whole process.
type Client struct {
	endpoint string
	key      string
	model    string
	batch    int
	httpc    *http.Client
}

func New(endpoint, key, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		batch:    defaultBatch,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Embed returns one vector per input text, in input order. The backend is
// called in batches; any failure aborts the whole call (no partial result).
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if c.endpoint == "" {
		return nil, apperr.New(apperr.Embedding, "embedding endpoint not configured")
	}
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += c.batch {
		end := start + c.batch
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := c.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, vecs...)
	}
	if len(out) != len(texts) {
		return nil, apperr.New(apperr.Embedding, "backend returned %d vectors for %d inputs", len(out), len(texts))
	}
	return out, nil
}

func (c *Client) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	body := map[string]any{"model": c.model, "input": texts}
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/embeddings", bytes.NewReader(b))
	if err != nil {
		return nil, apperr.Wrap(apperr.Embedding, "build request", err)
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Embedding, "call embedding backend", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, apperr.New(apperr.Embedding, "embedding backend returned %s", resp.Status)
	}

	var out struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.Embedding, "decode embedding response", err)
	}
	res := make([][]float32, len(out.Data))
	for i := range out.Data {
		if len(out.Data[i].Embedding) == 0 {
			return nil, apperr.New(apperr.Embedding, "empty vector at position %d", i)
		}
		res[i] = out.Data[i].Embedding
	}
	return res, nil
}
