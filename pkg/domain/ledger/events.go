package ledger

import (
	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// Event type strings used for subscription routing.
const (
	EventTransactionProcessed = "ledger.transaction.processed"
	EventTransactionReversed  = "ledger.transaction.reversed"
	EventFundsAdjusted        = "ledger.funds.adjusted"
	EventExpenseRecorded      = "ledger.expense.recorded"
	EventDayClosed            = "ledger.day.closed"
)

// TransactionProcessed is published after a transaction and the updated
// balances have been committed.
type TransactionProcessed struct {
	TransactionID uuid.UUID
	TxType        Type
	Amount        money.Money
	Fee           money.Money
	Pending       bool
}

// Type implements domain.Event.
func (TransactionProcessed) Type() string { return EventTransactionProcessed }

// TransactionReversed is published after a reversal has been committed.
type TransactionReversed struct {
	TransactionID uuid.UUID
	ReversalID    uuid.UUID
	OriginalType  Type
}

// Type implements domain.Event.
func (TransactionReversed) Type() string { return EventTransactionReversed }

// FundsAdjusted is published after a fund-management operation.
type FundsAdjusted struct {
	Kind   AdjustmentKind
	Cash   money.Money
	Wallet money.Money
}

// Type implements domain.Event.
func (FundsAdjusted) Type() string { return EventFundsAdjusted }

// ExpenseRecorded is published after an expense deduction.
type ExpenseRecorded struct {
	ExpenseID uuid.UUID
	Amount    money.Money
	Source    FundSource
}

// Type implements domain.Event.
func (ExpenseRecorded) Type() string { return EventExpenseRecorded }

// DayClosed is published after a close-of-day snapshot has been persisted.
type DayClosed struct {
	SummaryID uuid.UUID
	TotalFee  money.Money
}

// Type implements domain.Event.
func (DayClosed) Type() string { return EventDayClosed }
