// Package process orchestrates categorization: known mappings are applied
// directly, the configured strategy resolves the rest, and everything the
// run learns is pushed back into the mapping store.
package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/finscope-dev/finscope/internal/interaction"
	"github.com/finscope-dev/finscope/internal/mapping"
	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/strategy"
)

// ResolutionError marks one transaction whose strategy resolution failed.
// Processing continues past it; the transaction stays uncategorized and is
// surfaced in the run report.
type ResolutionError struct {
	Index     int
	Signature string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("transaction %d (%s): %v", e.Index, e.Signature, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Result is the outcome of one processing pass.
type Result struct {
	// Categorized holds successfully resolved transactions in input order.
	Categorized []model.Transaction
	// Unresolved holds transactions left without a category: strategy
	// failures plus everything after a cancellation, also in input order.
	Unresolved []model.Transaction
	// Learned is the set of signature-category pairs this run added to
	// the mapping store.
	Learned map[string]string
	// Errors lists per-transaction resolution failures.
	Errors []*ResolutionError
	// Cancelled reports that the run stopped early on user cancellation.
	Cancelled bool
}

// Process categorizes transactions in input order. Already-categorized
// transactions pass through untouched. A mapping-store hit assigns directly
// with no strategy call, and every in-run resolution binds its signature for
// the rest of the pass even when it is not learned, so two transactions
// sharing a signature never both reach the strategy and never end up in
// different categories. Learned pairs go back into the store via Set before
// the next transaction is examined.
//
// Cancellation (ctx done, or interaction.ErrCancelled surfacing from an
// interactive strategy) stops the pass cleanly: resolved transactions are
// returned, everything else lands in Unresolved, and nothing is flushed.
func Process(ctx context.Context, txns []model.Transaction, store *mapping.Store, strat strategy.Strategy) Result {
	res := Result{Learned: map[string]string{}}

	// Unlearned resolutions (narration hints, display-only fallbacks) never
	// reach the store, so the pass keeps its own signature-category record.
	resolved := map[string]string{}

	for i, txn := range txns {
		if txn.Categorized() {
			res.Categorized = append(res.Categorized, txn)
			continue
		}

		if cat, ok := store.Lookup(txn.MerchantSignature); ok {
			txn.Category = cat
			res.Categorized = append(res.Categorized, txn)
			continue
		}

		if cat, ok := resolved[txn.MerchantSignature]; ok {
			txn.Category = cat
			res.Categorized = append(res.Categorized, txn)
			continue
		}

		if ctx.Err() != nil {
			res.Cancelled = true
			res.Unresolved = append(res.Unresolved, txns[i:]...)
			break
		}

		resolution, err := strat.Resolve(ctx, txn, store)
		if err != nil {
			if errors.Is(err, interaction.ErrCancelled) || errors.Is(err, context.Canceled) {
				res.Cancelled = true
				res.Unresolved = append(res.Unresolved, txns[i:]...)
				break
			}
			res.Errors = append(res.Errors, &ResolutionError{
				Index:     i,
				Signature: txn.MerchantSignature,
				Err:       err,
			})
			res.Unresolved = append(res.Unresolved, txn)
			continue
		}

		txn.Category = resolution.Category
		resolved[txn.MerchantSignature] = resolution.Category
		if resolution.Learn {
			store.Set(txn.MerchantSignature, resolution.Category)
			res.Learned[txn.MerchantSignature] = resolution.Category
		}
		res.Categorized = append(res.Categorized, txn)
	}

	return res
}
