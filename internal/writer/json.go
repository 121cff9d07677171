package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/finscope-dev/finscope/internal/summary"
)

// JSONWriter renders the summary as indented JSON with amounts as fixed
// two-decimal strings, matching the CSV rendering.
type JSONWriter struct{}

type jsonRow struct {
	Period   string `json:"period"`
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

type jsonSummary struct {
	Rows             []jsonRow `json:"rows"`
	TotalCredit      string    `json:"total_credit"`
	TotalDebit       string    `json:"total_debit"`
	TotalNet         string    `json:"total_net"`
	TransactionCount int       `json:"transaction_count"`
}

// Format returns the writer name.
func (w *JSONWriter) Format() string { return "json" }

// Write renders data as JSON.
func (w *JSONWriter) Write(out io.Writer, data *summary.Data) error {
	doc := jsonSummary{
		Rows:             make([]jsonRow, 0, len(data.Rows)),
		TotalCredit:      data.TotalCredit.StringFixed(2),
		TotalDebit:       data.TotalDebit.StringFixed(2),
		TotalNet:         data.TotalNet.StringFixed(2),
		TransactionCount: data.TransactionCount,
	}
	for _, row := range data.Rows {
		doc.Rows = append(doc.Rows, jsonRow{
			Period:   row.Period,
			Category: row.Category,
			Total:    row.Total.StringFixed(2),
			Count:    row.Count,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}
