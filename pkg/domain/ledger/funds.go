// Package ledger models the agent counter's fund ledger: the two money pools
// (cash drawer and GCash wallet), the transactions that move value between
// them, and the audit records every adjustment leaves behind.
//
// Invariants:
//   - Each transaction's effect on the funds is a pure Delta; reversal applies
//     the exact negation of that Delta.
//   - Cash-out and load never draw a fund below zero.
//   - Fund adjustments (initialize, top-up, transfer) always produce a log
//     entry with the before and after balances.
package ledger

import (
	"time"

	"github.com/rmercado/kahera/pkg/money"
)

// FundsID is the fixed identifier of the singleton funds record.
const FundsID = "currentFunds"

// Funds holds the two running balances of the counter.
type Funds struct {
	Cash      money.Money
	Wallet    money.Money
	UpdatedAt time.Time
}

// Delta is a signed change to both balances.
type Delta struct {
	Cash   money.Money
	Wallet money.Money
}

// Negate returns the inverse delta.
func (d Delta) Negate() Delta {
	return Delta{Cash: d.Cash.Negate(), Wallet: d.Wallet.Negate()}
}

// Apply returns the funds with the delta applied. The arithmetic is checked;
// a delta that overflows the centavo range fails without partial effect.
func (f Funds) Apply(d Delta) (Funds, error) {
	cash, err := f.Cash.Add(d.Cash)
	if err != nil {
		return Funds{}, err
	}
	wallet, err := f.Wallet.Add(d.Wallet)
	if err != nil {
		return Funds{}, err
	}
	return Funds{Cash: cash, Wallet: wallet, UpdatedAt: f.UpdatedAt}, nil
}

// TransferDirection names which way a fund-to-fund transfer moves value.
type TransferDirection string

const (
	// DirectionCashToWallet moves value from the cash drawer to the wallet.
	DirectionCashToWallet TransferDirection = "cashToWallet"
	// DirectionWalletToCash moves value from the wallet to the cash drawer.
	DirectionWalletToCash TransferDirection = "walletToCash"
)

// Valid reports whether the direction is recognized.
func (d TransferDirection) Valid() bool {
	return d == DirectionCashToWallet || d == DirectionWalletToCash
}

// Total returns the combined value of both pools.
func (f Funds) Total() money.Money {
	return money.FromCentavos(f.Cash.Centavos() + f.Wallet.Centavos())
}
