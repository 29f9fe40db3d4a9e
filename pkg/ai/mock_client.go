// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock answers without any network. Used when GEMINI_API_KEY is unset so
// the server still comes up for local development.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Generate(_ context.Context, prompt string) (string, error) {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "novelty"):
		return `{"novelty_percentage": 50, "unique_sections": []}`, nil
	case strings.Contains(p, "plagiarism"):
		return `{"plagiarism_percentage": 0, "suspicious_sections": []}`, nil
	case strings.Contains(p, "cost"):
		return `{"estimated_cost": 0, "cost_breakdown": {}}`, nil
	case strings.Contains(p, "timeline"):
		return `{"timeline": []}`, nil
	case strings.Contains(p, "similarity"):
		return "50", nil
	default:
		return "mock answer", nil
	}
}
