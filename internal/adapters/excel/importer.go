// Package excel parses product spreadsheets uploaded through the
// catalog import endpoint.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/akramov/telepos/internal/core/port"
)

type Importer struct{}

func NewImporter() port.ImporterPort {
	return &Importer{}
}

// Parse reads the first sheet of an xlsx workbook. The first row is
// treated as the header, every following row becomes a port.Row keyed
// by the header cells. Short rows are padded with empty strings.
func (i *Importer) Parse(data []byte) ([]port.Row, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for idx, cell := range rows[0] {
		headers[idx] = strings.TrimSpace(cell)
	}

	parsed := make([]port.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(port.Row, len(headers))
		for idx, header := range headers {
			if header == "" {
				continue
			}
			if idx < len(cells) {
				row[header] = strings.TrimSpace(cells[idx])
			} else {
				row[header] = ""
			}
		}
		parsed = append(parsed, row)
	}

	return parsed, nil
}
