package extract

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"propai/pkg/apperr"
)

// xlsxText flattens every sheet to tab-separated rows. Budget tables in
// proposals arrive as spreadsheets often enough to make this worth having.
func xlsxText(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", apperr.Wrap(apperr.Extraction, "open xlsx", err)
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", apperr.Wrap(apperr.Extraction, "read sheet "+sheet, err)
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line == "" {
				continue
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
