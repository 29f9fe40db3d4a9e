package entities

import "time"

// Document is the audit record of one successful upload-and-index run.
// The vector index itself lives in process memory only; this row is what
// survives a restart and what GET /api/documents lists.
type Document struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"index" json:"filename"`
	Source    string    `json:"source"` // "upload" or the ingested URL
	Pages     int       `json:"pages"`
	Chunks    int       `json:"chunks"`
	Dim       int       `json:"dim"` // embedding dimensionality at build time
	CreatedAt time.Time `json:"created_at"`
}

// Report stores the outcome of one analysis call (novelty, plagiarism,
// cost, timeline, extract). Body holds the parsed JSON when the model
// cooperated, otherwise its raw text.
type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"index" json:"kind"`
	Filename  string    `json:"filename"`
	Parsed    bool      `json:"parsed"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
