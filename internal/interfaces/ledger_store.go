package interfaces

import (
	"context"

	"github.com/paystream/txengine/internal/models"
)

// Ledger is the per-account transaction store: the last known state of every
// TransactionID the account has recorded. The in-memory implementation is
// enough for a single run; a durable database can be substituted without
// touching account logic.
//
// Insert commits. Callers must only apply in-memory balance changes after
// Insert returns nil, so balances and ledger state never diverge even when
// the backing store can fail.
type Ledger interface {
	Contains(ctx context.Context, id models.TransactionID) (bool, error)
	Get(ctx context.Context, id models.TransactionID) (*models.TransactionState, error)
	Insert(ctx context.Context, id models.TransactionID, state models.TransactionState) error
}
