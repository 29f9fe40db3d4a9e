package service

import "context"

// GuidelineService is the retrieval-augmented QA pipeline over uploaded
// documents: build an index per file, answer questions against it.
type GuidelineService interface {
	// UploadPDF extracts, chunks, embeds and registers data under filename.
	UploadPDF(ctx context.Context, filename string, data []byte) (pages, chunks int, err error)

	// UploadText indexes already-extracted text (URL ingestion path).
	UploadText(ctx context.Context, name, text, source string) (chunks int, err error)

	// Ask answers a question against a previously uploaded file.
	Ask(ctx context.Context, filename, question string) (string, error)

	// AskDocument answers against a one-shot document that is never
	// registered: index, query, discard.
	AskDocument(ctx context.Context, filename string, data []byte, question string) (string, error)
}
