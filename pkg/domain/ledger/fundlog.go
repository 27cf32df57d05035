package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// AdjustmentKind classifies a fund-management operation in the audit log.
type AdjustmentKind string

const (
	// AdjustmentUpdate overwrites both balances with absolute values.
	AdjustmentUpdate AdjustmentKind = "update"
	// AdjustmentAdd tops up one or both balances.
	AdjustmentAdd AdjustmentKind = "add"
	// AdjustmentSwap moves value between the two balances.
	AdjustmentSwap AdjustmentKind = "swap"
)

// FundLogEntry is the append-only audit record of one fund adjustment.
// Entries are never mutated or deleted.
type FundLogEntry struct {
	ID             uuid.UUID
	PreviousCash   money.Money
	PreviousWallet money.Money
	UpdatedCash    money.Money
	UpdatedWallet  money.Money
	Description    string
	Kind           AdjustmentKind
	CreatedAt      time.Time
}

// NewFundLogEntry records the before and after balances of an adjustment.
func NewFundLogEntry(before, after Funds, kind AdjustmentKind, description string) *FundLogEntry {
	return &FundLogEntry{
		ID:             uuid.New(),
		PreviousCash:   before.Cash,
		PreviousWallet: before.Wallet,
		UpdatedCash:    after.Cash,
		UpdatedWallet:  after.Wallet,
		Description:    description,
		Kind:           kind,
		CreatedAt:      time.Now(),
	}
}
