package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/finscope-dev/finscope/internal/interaction"
	"github.com/finscope-dev/finscope/internal/mapping"
	"github.com/finscope-dev/finscope/internal/model"
)

// UserPrompt asks a human for each unmapped merchant through an interaction
// port. A narration hint short-circuits the ask the same way Auto does. On
// cancellation the error propagates so the run can stop cleanly; any other
// port failure degrades to the fallback for that one transaction, without
// persisting, so the user is asked again next run.
type UserPrompt struct {
	Port       interaction.Port
	Candidates []string
	Fallback   *Auto
}

// NewUserPrompt creates a prompting strategy over a port, offering the full
// category catalog.
func NewUserPrompt(port interaction.Port) *UserPrompt {
	return &UserPrompt{
		Port:       port,
		Candidates: model.Categories(),
		Fallback:   &Auto{Fallback: model.FallbackCategory},
	}
}

// Resolve asks the port for a category, honoring the user's remember choice.
func (u *UserPrompt) Resolve(ctx context.Context, txn model.Transaction, store *mapping.Store) (Resolution, error) {
	if hint := model.CategoryHint(txn.Bank, txn.DescriptionRaw); hint != "" {
		return Resolution{Category: hint}, nil
	}

	resp, err := u.Port.RequestCategory(ctx, interaction.Request{
		Description: txn.DescriptionRaw,
		Amount:      txn.Amount,
		Candidates:  u.Candidates,
	})
	if err != nil {
		if errors.Is(err, interaction.ErrCancelled) {
			return Resolution{}, err
		}
		// Transport failure, not a user decision: degrade for this
		// transaction only.
		return u.Fallback.Resolve(ctx, txn, store)
	}

	if !u.validCandidate(resp.Category) {
		return Resolution{}, fmt.Errorf("category %q is not offered for %q", resp.Category, txn.MerchantSignature)
	}
	return Resolution{Category: resp.Category, Learn: resp.Remember}, nil
}

func (u *UserPrompt) validCandidate(category string) bool {
	for _, c := range u.Candidates {
		if c == category {
			return true
		}
	}
	return false
}
