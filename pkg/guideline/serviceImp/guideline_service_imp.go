package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"propai/entities"
	"propai/pkg/ai"
	"propai/pkg/apperr"
	"propai/pkg/document/repository"
	"propai/pkg/extract"
	"propai/pkg/rag"
)

// Embedder is what the pipeline needs from the embedding backend.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

const (
	guidelineSentinel = "I don't know based on the guidelines PDF."
	documentSentinel  = "I do not have this information, ask based on the documents"

	// one-shot documents are smaller, tighter windows retrieve better
	oneShotChunkSize = 800
)

type Svc struct {
	emb     Embedder
	llm     ai.Client
	reg     *rag.Registry
	repo    repository.DocumentRepository
	size    int
	overlap int
	topK    int
}

func New(emb Embedder, llm ai.Client, reg *rag.Registry, repo repository.DocumentRepository, size, overlap, topK int) *Svc {
	return &Svc{emb: emb, llm: llm, reg: reg, repo: repo, size: size, overlap: overlap, topK: topK}
}

func (s *Svc) UploadPDF(ctx context.Context, filename string, data []byte) (int, int, error) {
	pages, err := extract.PDFPages(data)
	if err != nil {
		return 0, 0, err
	}
	chunks := rag.SplitPages(filename, pages, s.size, s.overlap)
	if err := s.buildAndRegister(ctx, filename, "upload", len(pages), chunks); err != nil {
		return 0, 0, err
	}
	return len(pages), len(chunks), nil
}

func (s *Svc) UploadText(ctx context.Context, name, text, source string) (int, error) {
	chunks := rag.SplitText(name, text, s.size, s.overlap)
	if err := s.buildAndRegister(ctx, name, source, 1, chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// buildAndRegister is the upload tail: embed, build, register, audit.
// The registry write is last, so a failure anywhere leaves any prior
// index for the same name untouched.
func (s *Svc) buildAndRegister(ctx context.Context, name, source string, pages int, chunks []rag.Chunk) error {
	ix, err := s.buildIndex(ctx, chunks)
	if err != nil {
		return err
	}
	s.reg.Put(name, ix)

	rec := &entities.Document{
		ID:       uuid.New().String(),
		Filename: name,
		Source:   source,
		Pages:    pages,
		Chunks:   ix.Len(),
		Dim:      ix.Dim(),
	}
	if err := s.repo.SaveDocument(rec); err != nil {
		// the index is live either way; the audit row is best effort
		log.Printf("[guideline] save document record: %v", err)
	}
	return nil
}

func (s *Svc) buildIndex(ctx context.Context, chunks []rag.Chunk) (*rag.Index, error) {
	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}
	vecs, err := s.emb.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	return rag.BuildIndex(chunks, vecs)
}

func (s *Svc) Ask(ctx context.Context, filename, question string) (string, error) {
	ix, ok := s.reg.Get(filename)
	if !ok {
		return "", apperr.New(apperr.NotFound, "No indexed PDF found for '%s'.", filename)
	}
	return s.answer(ctx, ix, question, guidelinePrompt, guidelineSentinel)
}

func (s *Svc) AskDocument(ctx context.Context, filename string, data []byte, question string) (string, error) {
	text, err := extract.Text(filename, data)
	if err != nil {
		return "", err
	}
	chunks := rag.SplitText(filename, text, oneShotChunkSize, s.overlap)
	ix, err := s.buildIndex(ctx, chunks)
	if err != nil {
		return "", err
	}
	return s.answer(ctx, ix, question, documentPrompt, documentSentinel)
}

func (s *Svc) answer(ctx context.Context, ix *rag.Index, question, tmpl, sentinel string) (string, error) {
	qv, err := s.emb.Embed(ctx, []string{question})
	if err != nil {
		return "", err
	}
	hits := ix.Nearest(qv[0], s.topK)

	parts := make([]string, len(hits))
	for i, h := range hits {
		parts[i] = h.Chunk.Text
	}
	prompt := fmt.Sprintf(tmpl, strings.Join(parts, "\n\n"), question, sentinel)

	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

const guidelinePrompt = `You are an instructor helping a journalist complete their paper.
Use ONLY the following guidelines to answer questions.

%s

Question: %s

If the answer is not specified in the guidelines, say: '%s'`

const documentPrompt = `You are a helpful assistant. Use ONLY the provided context.

%s

Question: %s

If the answer is not in the documents, say: '%s'`
