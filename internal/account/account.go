// Package account implements the per-client transaction state machine. An
// Account owns one client's balances and its ledger; it must be driven from a
// single goroutine, in arrival order, because the legality of each action
// depends on every prior action having been applied already.
package account

import (
	"context"

	"github.com/paystream/txengine/internal/amount"
	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
)

// Snapshot is a read-only view of an account's balances.
type Snapshot struct {
	Available amount.Amount
	Held      amount.Amount
	Total     amount.Amount
	Locked    bool
}

// Account holds one client's funds and the ledger recording every
// transaction it has accepted.
type Account struct {
	total  amount.Amount
	held   amount.Amount
	locked bool
	ledger interfaces.Ledger
}

// New creates an empty, unlocked account on top of the given ledger.
func New(ledger interfaces.Ledger) *Account {
	return &Account{
		total:  amount.Zero,
		held:   amount.Zero,
		ledger: ledger,
	}
}

// Available is the funds free for use: total minus held. Negative after a
// chargeback of funds that were already spent. Clamped to zero only on the
// defensive path where the subtraction itself would overflow, which cannot
// happen under correct operation.
func (a *Account) Available() amount.Amount {
	avail, ok := amount.CheckedSub(a.total, a.held)
	if !ok {
		return amount.Zero
	}
	return avail
}

// Held is the funds reserved by open disputes. Never negative under correct
// operation.
func (a *Account) Held() amount.Amount { return a.held }

// Total is the signed sum of all committed deposits and withdrawals. Can go
// negative via a chargeback shortfall.
func (a *Account) Total() amount.Amount { return a.total }

// Locked reports whether a chargeback has frozen the account. Sticky once set.
func (a *Account) Locked() bool { return a.locked }

// Snapshot captures the current balances.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		Available: a.Available(),
		Held:      a.held,
		Total:     a.total,
		Locked:    a.locked,
	}
}

// Execute applies one action. Every rejection is returned to the caller;
// nothing is retried or swallowed here. A *LedgerFault marks a storage
// failure rather than a business rejection.
func (a *Account) Execute(ctx context.Context, action models.Action) error {
	switch action.Type {
	case models.Deposit, models.Withdrawal:
		return a.transact(ctx, action)
	case models.Dispute:
		return a.dispute(ctx, action.Tx)
	case models.Resolve:
		return a.resolve(ctx, action.Tx)
	case models.Chargeback:
		return a.chargeback(ctx, action.Tx)
	default:
		return ErrUnexpected
	}
}

// transact moves money in or out of the account. The ledger write commits
// the transaction; balances only change after it succeeds.
func (a *Account) transact(ctx context.Context, action models.Action) error {
	if a.locked {
		return ErrAccountLocked
	}
	// The input format guarantees unique transaction ids, but a ledger is
	// the place to verify that, not trust it.
	seen, err := a.ledger.Contains(ctx, action.Tx)
	if err != nil {
		return &LedgerFault{Err: err}
	}
	if seen {
		return ErrRepeatedTransactionID
	}

	switch action.Type {
	case models.Deposit:
		if action.Amount <= amount.Zero {
			return ErrInvalidAmount
		}
		newTotal, ok := amount.CheckedAdd(a.total, action.Amount)
		if !ok {
			return ErrWouldOverflow
		}
		state := models.TransactionState{Status: models.StatusDeposit, Amount: action.Amount}
		if err := a.ledger.Insert(ctx, action.Tx, state); err != nil {
			return &LedgerFault{Err: err}
		}
		a.total = newTotal
		return nil

	case models.Withdrawal:
		// The available check is what makes in-order processing load-bearing.
		if action.Amount <= amount.Zero || a.Available() < action.Amount {
			return ErrInvalidAmount
		}
		newTotal, ok := amount.CheckedSub(a.total, action.Amount)
		if !ok {
			// unreachable: available >= amount implies total >= amount - held
			return ErrUnexpected
		}
		state := models.TransactionState{Status: models.StatusWithdrawal, Amount: action.Amount}
		if err := a.ledger.Insert(ctx, action.Tx, state); err != nil {
			return &LedgerFault{Err: err}
		}
		a.total = newTotal
		return nil

	default:
		return ErrUnexpected
	}
}

// dispute is a client's claim that a deposit was erroneous. The disputed
// funds are held back until a resolve or chargeback closes the dispute.
// Not gated on the lock: only money movement is blocked on a locked account.
func (a *Account) dispute(ctx context.Context, id models.TransactionID) error {
	state, err := a.ledger.Get(ctx, id)
	if err != nil {
		return &LedgerFault{Err: err}
	}
	if state == nil {
		return ErrInvalidTransactionID
	}

	switch state.Status {
	case models.StatusChargedBack:
		return ErrAlreadyChargedBack
	case models.StatusDepositInDispute:
		return ErrAlreadyInDispute
	case models.StatusWithdrawal:
		// withdrawals are never disputable
		return ErrInvalidTransactionType
	case models.StatusDeposit:
		newHeld, ok := amount.CheckedAdd(a.held, state.Amount)
		if !ok {
			return ErrWouldOverflow
		}
		next := models.TransactionState{Status: models.StatusDepositInDispute, Amount: state.Amount}
		if err := a.ledger.Insert(ctx, id, next); err != nil {
			return &LedgerFault{Err: err}
		}
		a.held = newHeld
		return nil
	default:
		return ErrUnexpected
	}
}

// resolve closes a dispute in the client's favour, releasing the held funds.
func (a *Account) resolve(ctx context.Context, id models.TransactionID) error {
	state, err := a.ledger.Get(ctx, id)
	if err != nil {
		return &LedgerFault{Err: err}
	}
	if state == nil {
		return ErrInvalidTransactionID
	}

	switch state.Status {
	case models.StatusChargedBack:
		return ErrAlreadyChargedBack
	case models.StatusDeposit, models.StatusWithdrawal:
		return ErrDisputeNotOpened
	case models.StatusDepositInDispute:
		newHeld, ok := amount.CheckedSub(a.held, state.Amount)
		if !ok {
			return ErrUnexpected
		}
		next := models.TransactionState{Status: models.StatusDeposit, Amount: state.Amount}
		if err := a.ledger.Insert(ctx, id, next); err != nil {
			return &LedgerFault{Err: err}
		}
		a.held = newHeld
		return nil
	default:
		return ErrUnexpected
	}
}

// chargeback reverses a disputed deposit and freezes the account for good.
// Total is not clamped: if the disputed funds were already withdrawn, the
// account ends up overdrawn and both total and available go negative.
func (a *Account) chargeback(ctx context.Context, id models.TransactionID) error {
	state, err := a.ledger.Get(ctx, id)
	if err != nil {
		return &LedgerFault{Err: err}
	}
	if state == nil {
		return ErrInvalidTransactionID
	}

	switch state.Status {
	case models.StatusChargedBack:
		return ErrAlreadyChargedBack
	case models.StatusDeposit, models.StatusWithdrawal:
		return ErrDisputeNotOpened
	case models.StatusDepositInDispute:
		newHeld, okHeld := amount.CheckedSub(a.held, state.Amount)
		newTotal, okTotal := amount.CheckedSub(a.total, state.Amount)
		if !okHeld || !okTotal {
			return ErrUnexpected
		}
		next := models.TransactionState{Status: models.StatusChargedBack, Amount: state.Amount}
		if err := a.ledger.Insert(ctx, id, next); err != nil {
			return &LedgerFault{Err: err}
		}
		a.locked = true
		a.held = newHeld
		a.total = newTotal
		return nil
	default:
		return ErrUnexpected
	}
}
