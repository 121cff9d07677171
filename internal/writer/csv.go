package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/finscope-dev/finscope/internal/summary"
)

// Header is the CSV header for summary exports.
const Header = "period,category,total,count"

// CSVWriter renders the summary as CSV: one row per bucket, then the
// run-wide totals.
type CSVWriter struct{}

// Format returns the writer name.
func (w *CSVWriter) Format() string { return "csv" }

// Write renders data as CSV.
func (w *CSVWriter) Write(out io.Writer, data *summary.Data) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range data.Rows {
		rec := []string{row.Period, row.Category, row.Total.StringFixed(2), strconv.Itoa(row.Count)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	totals := [][]string{
		{"", "Total Credit", data.TotalCredit.StringFixed(2), ""},
		{"", "Total Debit", data.TotalDebit.StringFixed(2), ""},
		{"", "Total Net", data.TotalNet.StringFixed(2), ""},
	}
	for _, rec := range totals {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}
	}
	return cw.Error()
}
