// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"path/filepath"
	"strings"

	"propai/pkg/apperr"
)

// Text extracts the whole document as one string, dispatching on the file
// extension. Unsupported extensions are a caller mistake, not an
// extraction failure.
func Text(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		pages, err := PDFPages(data)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, "\n"), nil
	case ".docx":
		return docxText(data)
	case ".xlsx":
		return xlsxText(data)
	case ".txt", ".csv", ".json", ".md":
		return plainText(data), nil
	default:
		return "", apperr.New(apperr.Validation, "Unsupported file type: %s", ext)
	}
}

// plainText tolerates odd encodings instead of failing: anything that is
// not valid UTF-8 is replaced, a leading BOM is dropped.
func plainText(data []byte) string {
	s := strings.TrimPrefix(string(data), "\ufeff")
	return strings.ToValidUTF8(s, "�")
}
