package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// FundSource names the fund an expense is paid from.
type FundSource string

const (
	// SourceCash pays from the cash drawer.
	SourceCash FundSource = "cash"
	// SourceWallet pays from the GCash wallet.
	SourceWallet FundSource = "wallet"
)

// Valid reports whether the source is a known fund.
func (s FundSource) Valid() bool {
	return s == SourceCash || s == SourceWallet
}

// Expense is an append-only record of money taken out of a fund for shop
// costs. It carries the resulting balances after the deduction.
type Expense struct {
	ID            uuid.UUID
	Amount        money.Money
	Source        FundSource
	Description   string
	UpdatedCash   money.Money
	UpdatedWallet money.Money
	CreatedAt     time.Time
}
