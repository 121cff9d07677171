package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads a CSV statement export. skipRows preamble lines (account
// holder blocks, disclaimers) are discarded before the header; bank exports
// commonly carry one or two dozen of them. The first remaining record is the
// header, everything after is data. Ragged records are tolerated: short rows
// leave trailing columns absent rather than failing the whole file.
func ReadCSV(r io.Reader, skipRows int) (*Statement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if skipRows >= len(records) {
		return nil, fmt.Errorf("statement has %d lines, expected header after %d preamble lines", len(records), skipRows)
	}

	header := records[skipRows]
	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	st := &Statement{Columns: columns}
	for i, rec := range records[skipRows+1:] {
		cells := make(map[string]string, len(columns))
		for j, col := range columns {
			if j < len(rec) {
				cells[col] = rec[j]
			}
		}
		st.Rows = append(st.Rows, Row{
			Line:  skipRows + i + 2,
			Cells: cells,
		})
	}
	return st, nil
}
