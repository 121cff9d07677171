package parser

import (
	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/statement"
)

// SBIParser parses State Bank of India account statement exports.
type SBIParser struct{}

const (
	sbiBank     = "sbi"
	sbiSkipRows = 19
	sbiColDate  = "Txn Date"
	sbiColDesc  = "Description"
	sbiColDebit = "Debit"
	sbiColCred  = "Credit"
)

var sbiDateLayouts = []string{"2 Jan 2006", "02 Jan 2006", "02/01/2006"}

// Bank returns the bank id.
func (p *SBIParser) Bank() string { return sbiBank }

// SkipRows returns the preamble line count above the header.
func (p *SBIParser) SkipRows() int { return sbiSkipRows }

// Parse converts SBI statement rows into canonical transactions.
func (p *SBIParser) Parse(st *statement.Statement) ([]model.Transaction, []*MalformedRowError, error) {
	if err := checkColumns(p.Bank(), st, sbiColDate, sbiColDesc, sbiColDebit, sbiColCred); err != nil {
		return nil, nil, err
	}

	var txns []model.Transaction
	var rowErrs []*MalformedRowError
	for _, row := range st.Rows {
		txn, rerr := parseRow(p.Bank(), row, rowSpec{
			dateCol:     sbiColDate,
			descCol:     sbiColDesc,
			debitCol:    sbiColDebit,
			creditCol:   sbiColCred,
			dateLayouts: sbiDateLayouts,
		})
		if rerr != nil {
			rowErrs = append(rowErrs, rerr)
			continue
		}
		txns = append(txns, txn)
	}
	return txns, rowErrs, nil
}
