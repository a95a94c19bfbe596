package models

import "github.com/paystream/txengine/internal/amount"

// ClientID identifies one client account. It is the routing key: all actions
// carrying the same ClientID are applied strictly in arrival order.
type ClientID uint16

// TransactionID identifies a money-movement transaction. The input format
// guarantees global uniqueness, but accounts re-verify it per ledger anyway.
type TransactionID uint32

// ActionType enumerates the kinds of actions a client can submit.
type ActionType int

const (
	Deposit ActionType = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (t ActionType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Action is one parsed instruction for an account. Amount is only meaningful
// for Deposit and Withdrawal; dispute-lifecycle actions reference the amount
// recorded in the ledger instead.
type Action struct {
	Type   ActionType
	Tx     TransactionID
	Amount amount.Amount
}
