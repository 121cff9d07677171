// Package strategy holds the pluggable policies that resolve a category for
// a merchant the mapping store does not know yet. The store lookup itself is
// the processor's fast path; a strategy only ever sees misses.
package strategy

import (
	"context"

	"github.com/finscope-dev/finscope/internal/mapping"
	"github.com/finscope-dev/finscope/internal/model"
)

// Resolution is a strategy's answer for one transaction. Learn asks the
// processor to write the signature-category pair into the mapping store;
// display-only fallbacks leave the store untouched so the merchant is
// resolved afresh next run.
type Resolution struct {
	Category string
	Learn    bool
}

// Strategy resolves a category for a transaction whose merchant signature
// missed the mapping store.
type Strategy interface {
	Resolve(ctx context.Context, txn model.Transaction, store *mapping.Store) (Resolution, error)
}
