package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"

	"propai/pkg/apperr"
)

// PDFPages returns per-page text in page order. A page the parser cannot
// render yields an empty string, never an omission, so downstream chunking
// keeps positional provenance intact.
func PDFPages(data []byte) ([]string, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.Wrap(apperr.Extraction, "open pdf", err)
	}

	n := rdr.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := rdr.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			// a single broken page does not poison the document
			txt = ""
		}
		pages = append(pages, txt)
	}
	return pages, nil
}
