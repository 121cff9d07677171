package strategy

import (
	"context"

	"github.com/finscope-dev/finscope/internal/mapping"
	"github.com/finscope-dev/finscope/internal/model"
)

// Auto resolves unmapped merchants without any human involvement. A
// narration category hint wins when the bank embeds one; otherwise the
// configured fallback applies. Never blocks, never fails.
type Auto struct {
	// Fallback is the deterministic bucket for hint-less merchants.
	Fallback string
	// Learn persists fallback assignments. Off, the fallback is for
	// display only and the merchant stays unknown.
	Learn bool
}

// NewAuto creates an Auto strategy with the catalog fallback category.
func NewAuto(learn bool) *Auto {
	return &Auto{Fallback: model.FallbackCategory, Learn: learn}
}

// Resolve picks the narration hint when present, else the fallback. Hints
// come from the payer's free text, not the signature, so they are never
// persisted; the processor keeps duplicate signatures consistent within a
// run.
func (a *Auto) Resolve(_ context.Context, txn model.Transaction, _ *mapping.Store) (Resolution, error) {
	if hint := model.CategoryHint(txn.Bank, txn.DescriptionRaw); hint != "" {
		return Resolution{Category: hint}, nil
	}
	return Resolution{Category: a.Fallback, Learn: a.Learn}, nil
}
