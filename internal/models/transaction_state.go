package models

import "github.com/paystream/txengine/internal/amount"

// TxStatus is the lifecycle position of a recorded transaction.
type TxStatus int

const (
	StatusDeposit TxStatus = iota
	StatusWithdrawal
	StatusDepositInDispute
	StatusChargedBack
)

func (s TxStatus) String() string {
	switch s {
	case StatusDeposit:
		return "deposit"
	case StatusWithdrawal:
		return "withdrawal"
	case StatusDepositInDispute:
		return "deposit_in_dispute"
	case StatusChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// TransactionState is the durable ledger record for one TransactionID. It is
// the single source of truth for what a dispute, resolve or chargeback may
// legally do next. Withdrawals can never be disputed but are recorded anyway,
// so a persistent backend could rebuild account state by replay.
type TransactionState struct {
	Status TxStatus
	Amount amount.Amount
}
