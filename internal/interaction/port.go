package interaction

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrCancelled is returned when the user declines to answer or the exchange
// is cancelled. The caller must not persist anything for the transaction;
// the question comes back on the next run.
var ErrCancelled = errors.New("categorization cancelled")

// Request carries the context a human needs to pick a category for one
// transaction.
type Request struct {
	Description string
	Amount      decimal.Decimal
	Candidates  []string
}

// Response is the user's decision. Remember controls whether the
// merchant-category pair is written into the mapping store.
type Response struct {
	Category string
	Remember bool
}

// Port is the request/response exchange used by interactive categorization.
// Implementations must honor ctx cancellation rather than blocking forever,
// which is what lets the same processor run with a console port live and a
// scripted port in tests.
type Port interface {
	RequestCategory(ctx context.Context, req Request) (Response, error)
}
