package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the canonical record every bank parser must produce.
// DescriptionRaw is kept verbatim for auditability; the sign convention is
// fixed at parse time (debit negative, credit positive) no matter how the
// source bank lays out its columns.
type Transaction struct {
	ID                string
	Date              time.Time
	DescriptionRaw    string
	Amount            decimal.Decimal
	Bank              string
	MerchantSignature string
	Category          string // empty until resolved
}

// NewTransaction builds a canonical transaction, deriving the merchant
// signature from the raw description.
func NewTransaction(bank string, date time.Time, descriptionRaw string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:                uuid.NewString(),
		Date:              date,
		DescriptionRaw:    descriptionRaw,
		Amount:            amount,
		Bank:              bank,
		MerchantSignature: Signature(bank, descriptionRaw),
	}
}

// Categorized reports whether a category has been assigned.
func (t Transaction) Categorized() bool {
	return t.Category != ""
}

// Period returns the year-month aggregation bucket, e.g. "2025-01".
func (t Transaction) Period() string {
	return t.Date.Format("2006-01")
}
