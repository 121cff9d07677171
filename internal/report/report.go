// Package report collects the user-visible outcome of one pipeline run:
// per-statement parse counts and per-run categorization counts.
package report

import (
	"fmt"
	"io"

	"github.com/finscope-dev/finscope/internal/parser"
)

// Statement is the parse outcome for one statement file.
type Statement struct {
	File       string
	Bank       string
	ParsedRows int
	RowErrors  []*parser.MalformedRowError
	// Err is a statement-level failure (unknown bank, unrecognized
	// format); the file was skipped entirely.
	Err error
}

// SkippedRows returns the count of rows excluded from the statement.
func (s Statement) SkippedRows() int {
	return len(s.RowErrors)
}

// Run aggregates a whole pipeline execution.
type Run struct {
	Statements []Statement
	Learned    int
	Unresolved int
	Cancelled  bool
}

// Add appends one statement outcome.
func (r *Run) Add(s Statement) {
	r.Statements = append(r.Statements, s)
}

// TotalParsed sums parsed rows across statements.
func (r *Run) TotalParsed() int {
	n := 0
	for _, s := range r.Statements {
		n += s.ParsedRows
	}
	return n
}

// Render writes the human-readable run report.
func (r *Run) Render(w io.Writer) {
	for _, s := range r.Statements {
		if s.Err != nil {
			fmt.Fprintf(w, "%s: skipped (%v)\n", s.File, s.Err)
			continue
		}
		fmt.Fprintf(w, "%s (%s): %d rows parsed, %d skipped\n", s.File, s.Bank, s.ParsedRows, s.SkippedRows())
		for _, re := range s.RowErrors {
			fmt.Fprintf(w, "  %v\n", re)
		}
	}
	fmt.Fprintf(w, "learned %d new merchant mappings, %d transactions unresolved\n", r.Learned, r.Unresolved)
	if r.Cancelled {
		fmt.Fprintln(w, "run cancelled before all transactions were resolved")
	}
}
