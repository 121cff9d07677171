package parser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/statement"
)

// Parser converts one bank's statement rows into canonical transactions.
// Parse follows a partial-success policy: rows missing a required field come
// back as MalformedRowErrors while valid rows are still returned. Only a
// header/schema mismatch fails the whole statement.
type Parser interface {
	Bank() string
	SkipRows() int
	Parse(st *statement.Statement) ([]model.Transaction, []*MalformedRowError, error)
}

// Registry holds parsers keyed by bank id.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate bank id.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Bank())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate bank parser: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for a bank id.
func (r *Registry) Get(bank string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(bank)]
	if !ok {
		return nil, &UnknownBankError{Bank: bank}
	}
	return p, nil
}

// Banks lists registered bank ids.
func (r *Registry) Banks() []string {
	banks := make([]string, 0, len(r.parsers))
	for b := range r.parsers {
		banks = append(banks, b)
	}
	return banks
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&HDFCParser{})
	r.Register(&SBIParser{})
	return r
}

// parseDate tries the given layouts in order.
func parseDate(layouts []string, cell string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var d time.Time
		d, err = time.Parse(layout, cell)
		if err == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// parseAmount builds the signed canonical amount from a bank's separate
// debit/credit columns: credit minus debit, so spend is negative. Indian
// exports group thousands with commas.
func parseAmount(debitCell, creditCell string) (decimal.Decimal, error) {
	amount := decimal.Zero
	if debitCell != "" {
		d, err := decimal.NewFromString(strings.ReplaceAll(debitCell, ",", ""))
		if err != nil {
			return decimal.Zero, err
		}
		amount = amount.Sub(d)
	}
	if creditCell != "" {
		c, err := decimal.NewFromString(strings.ReplaceAll(creditCell, ",", ""))
		if err != nil {
			return decimal.Zero, err
		}
		amount = amount.Add(c)
	}
	return amount, nil
}
