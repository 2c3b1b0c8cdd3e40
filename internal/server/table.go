package server

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/Skufu/adeshield/internal/risk"
)

// readTable decodes an uploaded CSV into a risk.Table. The first line is the
// header; column names not in the clinical vocabulary ride along unscored.
// Only a structurally unreadable file is an error; missing or bad cell values
// are handled downstream by the scorer's defaulting.
func readTable(r io.Reader) (risk.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // short rows default, not fail

	header, err := cr.Read()
	if err != nil {
		return risk.Table{}, fmt.Errorf("read header: %w", err)
	}

	table := risk.Table{Columns: header}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return risk.Table{}, fmt.Errorf("read row %d: %w", len(table.Rows)+1, err)
		}

		row := make(risk.Row, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
