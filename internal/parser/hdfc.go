package parser

import (
	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/statement"
)

// HDFCParser parses HDFC Bank account statement exports.
type HDFCParser struct{}

const (
	hdfcBank     = "hdfc"
	hdfcSkipRows = 20
	hdfcColDate  = "Date"
	hdfcColDesc  = "Narration"
	hdfcColDebit = "Withdrawal Amt."
	hdfcColCred  = "Deposit Amt."
)

// hdfcDateLayouts: HDFC exports switch between two-digit and four-digit
// years depending on the export tool version.
var hdfcDateLayouts = []string{"02/01/06", "02/01/2006"}

// Bank returns the bank id.
func (p *HDFCParser) Bank() string { return hdfcBank }

// SkipRows returns the preamble line count above the header.
func (p *HDFCParser) SkipRows() int { return hdfcSkipRows }

// Parse converts HDFC statement rows into canonical transactions.
func (p *HDFCParser) Parse(st *statement.Statement) ([]model.Transaction, []*MalformedRowError, error) {
	if err := checkColumns(p.Bank(), st, hdfcColDate, hdfcColDesc, hdfcColDebit, hdfcColCred); err != nil {
		return nil, nil, err
	}

	var txns []model.Transaction
	var rowErrs []*MalformedRowError
	for _, row := range st.Rows {
		txn, rerr := parseRow(p.Bank(), row, rowSpec{
			dateCol:     hdfcColDate,
			descCol:     hdfcColDesc,
			debitCol:    hdfcColDebit,
			creditCol:   hdfcColCred,
			dateLayouts: hdfcDateLayouts,
		})
		if rerr != nil {
			rowErrs = append(rowErrs, rerr)
			continue
		}
		txns = append(txns, txn)
	}
	return txns, rowErrs, nil
}
