package account

import (
	"errors"
	"fmt"
)

// Rejection kinds. All are non-fatal and scoped to the single action that
// triggered them; a rejected business action is final, not transient.
var (
	// ErrAccountLocked rejects money movement on a locked account.
	ErrAccountLocked = errors.New("account locked")
	// ErrInvalidAmount rejects zero/negative amounts and uncovered withdrawals.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrWouldOverflow rejects an action whose balance math would overflow.
	ErrWouldOverflow = errors.New("would overflow")
	// ErrDisputeNotOpened rejects resolve/chargeback without an open dispute.
	ErrDisputeNotOpened = errors.New("dispute not opened yet")
	// ErrAlreadyInDispute rejects a second dispute of the same transaction.
	ErrAlreadyInDispute = errors.New("already in dispute")
	// ErrAlreadyChargedBack rejects any action on a charged back transaction.
	ErrAlreadyChargedBack = errors.New("already charged back")
	// ErrInvalidTransactionID rejects references to unknown transactions.
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	// ErrInvalidTransactionType rejects disputes of withdrawals.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrRepeatedTransactionID rejects a reused transaction id.
	ErrRepeatedTransactionID = errors.New("repeated transaction id")
	// ErrUnexpected covers states the state machine proves unreachable.
	ErrUnexpected = errors.New("unexpected state")
)

// LedgerFault reports a failure of the backing store, a systemic fault
// rather than a business-rule rejection. The caller may retry the action if
// it believes the store is recoverable; the account takes no such decision.
type LedgerFault struct {
	Err error
}

func (f *LedgerFault) Error() string {
	return fmt.Sprintf("ledger fault: %v", f.Err)
}

func (f *LedgerFault) Unwrap() error {
	return f.Err
}
