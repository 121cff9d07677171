package parser

import (
	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/statement"
)

// rowSpec names one bank's column layout. Column order, date layout, and
// debit/credit placement are the only things that differ between banks;
// signature derivation and categorization stay in the shared model.
type rowSpec struct {
	dateCol     string
	descCol     string
	debitCol    string
	creditCol   string
	dateLayouts []string
}

// checkColumns verifies the statement header carries the expected schema.
func checkColumns(bank string, st *statement.Statement, required ...string) error {
	var missing []string
	for _, col := range required {
		if !st.HasColumns(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &UnrecognizedFormatError{Bank: bank, Missing: missing}
	}
	return nil
}

// parseRow converts one statement row into a canonical transaction.
func parseRow(bank string, row statement.Row, spec rowSpec) (model.Transaction, *MalformedRowError) {
	dateCell, _ := row.Get(spec.dateCol)
	if dateCell == "" {
		return model.Transaction{}, &MalformedRowError{Line: row.Line, Field: "date"}
	}
	date, err := parseDate(spec.dateLayouts, dateCell)
	if err != nil {
		return model.Transaction{}, &MalformedRowError{Line: row.Line, Field: "date", Cause: err}
	}

	debitCell, _ := row.Get(spec.debitCol)
	creditCell, _ := row.Get(spec.creditCol)
	if debitCell == "" && creditCell == "" {
		return model.Transaction{}, &MalformedRowError{Line: row.Line, Field: "amount"}
	}
	amount, err := parseAmount(debitCell, creditCell)
	if err != nil {
		return model.Transaction{}, &MalformedRowError{Line: row.Line, Field: "amount", Cause: err}
	}

	desc, _ := row.Get(spec.descCol)
	return model.NewTransaction(bank, date, desc, amount), nil
}
