// Package summary turns a fully categorized transaction set into the
// period/category rollup handed to the output writers.
package summary

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finscope-dev/finscope/internal/model"
)

// IncompleteCategorizationError means aggregation was attempted over a set
// that still contains uncategorized transactions. A summary that silently
// drops them would be worse than stopping, so this is fatal for the step.
type IncompleteCategorizationError struct {
	Count int
}

func (e *IncompleteCategorizationError) Error() string {
	return fmt.Sprintf("%d transactions still uncategorized", e.Count)
}

// Row is one aggregation bucket.
type Row struct {
	Period   string // year-month, e.g. "2025-01"
	Category string
	Total    decimal.Decimal
	Count    int
}

// Data is the finished rollup: rows sorted by period then category, plus
// run-wide totals split by category kind. Read-only once produced.
type Data struct {
	Rows             []Row
	TotalCredit      decimal.Decimal
	TotalDebit       decimal.Decimal
	TotalNet         decimal.Decimal
	TransactionCount int
}

// Summarize groups transactions by (period, category), summing amounts and
// counting. Output row order is deterministic regardless of input order:
// period ascending, then category name ascending.
func Summarize(txns []model.Transaction) (*Data, error) {
	if n := countUncategorized(txns); n > 0 {
		return nil, &IncompleteCategorizationError{Count: n}
	}

	type key struct{ period, category string }
	buckets := make(map[key]*Row)

	data := &Data{
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		TotalNet:    decimal.Zero,
	}
	for _, txn := range txns {
		k := key{period: txn.Period(), category: txn.Category}
		row, ok := buckets[k]
		if !ok {
			row = &Row{Period: k.period, Category: k.category, Total: decimal.Zero}
			buckets[k] = row
		}
		row.Total = row.Total.Add(txn.Amount)
		row.Count++

		switch model.KindOf(txn.Category) {
		case model.KindCredit:
			data.TotalCredit = data.TotalCredit.Add(txn.Amount)
		case model.KindNet:
			data.TotalNet = data.TotalNet.Add(txn.Amount)
		default:
			data.TotalDebit = data.TotalDebit.Add(txn.Amount)
		}
		data.TransactionCount++
	}

	data.Rows = make([]Row, 0, len(buckets))
	for _, row := range buckets {
		data.Rows = append(data.Rows, *row)
	}
	sort.Slice(data.Rows, func(i, j int) bool {
		if data.Rows[i].Period != data.Rows[j].Period {
			return data.Rows[i].Period < data.Rows[j].Period
		}
		return data.Rows[i].Category < data.Rows[j].Category
	})
	return data, nil
}

func countUncategorized(txns []model.Transaction) int {
	n := 0
	for _, txn := range txns {
		if !txn.Categorized() {
			n++
		}
	}
	return n
}
