package serviceImp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"propai/entities"
	"propai/pkg/ai"
	"propai/pkg/analysis/service"
	"propai/pkg/document/repository"
	"propai/pkg/extract"
)

// the original scoring prompts cap the document excerpt
const snippetLimit = 4000

type Svc struct {
	llm  ai.Client
	repo repository.DocumentRepository
}

func New(llm ai.Client, repo repository.DocumentRepository) *Svc {
	return &Svc{llm: llm, repo: repo}
}

func (s *Svc) Novelty(ctx context.Context, filename string, data []byte) (ai.Result, error) {
	return s.run(ctx, "novelty", filename, data, snippetLimit, noveltyPrompt)
}

func (s *Svc) Plagiarism(ctx context.Context, filename string, data []byte) (ai.Result, error) {
	return s.run(ctx, "plagiarism", filename, data, snippetLimit, plagiarismPrompt)
}

func (s *Svc) Cost(ctx context.Context, filename string, data []byte) (ai.Result, error) {
	return s.run(ctx, "cost", filename, data, snippetLimit, costPrompt)
}

func (s *Svc) Timeline(ctx context.Context, filename string, data []byte) (ai.Result, error) {
	return s.run(ctx, "timeline", filename, data, 0, timelinePrompt)
}

func (s *Svc) ExtractJSON(ctx context.Context, filename string, data []byte) (ai.Result, error) {
	return s.run(ctx, "extract", filename, data, 0, extractPrompt)
}

func (s *Svc) run(ctx context.Context, kind, filename string, data []byte, limit int, tmpl string) (ai.Result, error) {
	text, err := extract.Text(filename, data)
	if err != nil {
		return ai.Result{}, err
	}
	if limit > 0 {
		if r := []rune(text); len(r) > limit {
			text = string(r[:limit])
		}
	}

	raw, err := s.llm.Generate(ctx, fmt.Sprintf(tmpl, text))
	if err != nil {
		return ai.Result{}, err
	}
	res := ai.ParseLoose(raw)
	s.saveReport(kind, filename, res)
	return res, nil
}

func (s *Svc) Validate(ctx context.Context, content string) ([]service.Issue, error) {
	raw, err := s.llm.Generate(ctx, fmt.Sprintf(validatePrompt, content, proposalTemplate))
	if err != nil {
		return nil, err
	}
	res := ai.ParseLoose(raw)
	if !res.Parsed() {
		// unparseable reviewer output means no usable findings
		return []service.Issue{}, nil
	}
	var issues []service.Issue
	if err := json.Unmarshal(res.JSON, &issues); err != nil {
		return []service.Issue{}, nil
	}
	clean := issues[:0]
	for _, is := range issues {
		if is.Message != "" {
			clean = append(clean, is)
		}
	}
	return clean, nil
}

func (s *Svc) saveReport(kind, filename string, res ai.Result) {
	body := res.Raw
	if res.Parsed() {
		body = string(res.JSON)
	}
	rep := &entities.Report{Kind: kind, Filename: filename, Parsed: res.Parsed(), Body: body}
	if err := s.repo.SaveReport(rep); err != nil {
		log.Printf("[analysis] save %s report: %v", kind, err)
	}
}
