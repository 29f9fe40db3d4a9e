// pkg/ai/gemini_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"propai/pkg/apperr"
)

type gemini struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// NewGemini builds a client for the generativelanguage REST API. rpm bounds
// requests per minute toward the model (the free tier throttles hard); 0
// means no local limit.
func NewGemini(endpoint, key, model string, timeout time.Duration, rpm int) Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	var lim *rate.Limiter
	if rpm > 0 {
		lim = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
	}
	return &gemini{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: timeout},
		limiter:  lim,
	}
}

func (c *gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", apperr.Wrap(apperr.Generation, "rate limit wait", err)
		}
	}

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{"temperature": 0},
	}
	b, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", apperr.Wrap(apperr.Generation, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.Generation, "call gemini", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", apperr.New(apperr.Generation, "gemini returned %s", resp.Status)
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Wrap(apperr.Generation, "decode gemini response", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperr.New(apperr.Generation, "gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", apperr.New(apperr.Generation, "gemini returned empty text")
	}
	return text, nil
}
