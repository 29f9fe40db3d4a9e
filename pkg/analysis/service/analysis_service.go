package service

import (
	"context"

	"propai/pkg/ai"
)

// Issue is one reviewer finding against the proposal template.
type Issue struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// AnalysisService runs whole-document prompts against the generative
// backend. Each call returns a tagged Result: parsed JSON when the model
// cooperated, its raw text otherwise.
type AnalysisService interface {
	Novelty(ctx context.Context, filename string, data []byte) (ai.Result, error)
	Plagiarism(ctx context.Context, filename string, data []byte) (ai.Result, error)
	Cost(ctx context.Context, filename string, data []byte) (ai.Result, error)
	Timeline(ctx context.Context, filename string, data []byte) (ai.Result, error)
	ExtractJSON(ctx context.Context, filename string, data []byte) (ai.Result, error)
	Validate(ctx context.Context, content string) ([]Issue, error)
}
