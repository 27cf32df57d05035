package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// DailySummary is a point-in-time close-of-day snapshot: the day's collected
// fees plus both balances as they stood when the operator closed the day.
// Summaries are append-only; closing the same day twice records two rows.
type DailySummary struct {
	ID       uuid.UUID
	Date     time.Time
	TotalFee money.Money
	Cash     money.Money
	Wallet   money.Money
}

// Totals is the read-side aggregation over a filtered transaction set.
// An empty set yields zero totals.
type Totals struct {
	TotalFee      money.Money
	PendingAmount money.Money
	PendingFee    money.Money
}

// SumTransactions folds a transaction list into Totals: every matched
// transaction contributes its fee; the pending subset additionally
// contributes amount and fee to the pending figures.
func SumTransactions(txs []*Transaction) Totals {
	var totalFee, pendingAmount, pendingFee int64
	for _, tx := range txs {
		totalFee += tx.Fee.Centavos()
		if tx.Status == StatusPending {
			pendingAmount += tx.Amount.Centavos()
			pendingFee += tx.Fee.Centavos()
		}
	}
	return Totals{
		TotalFee:      money.FromCentavos(totalFee),
		PendingAmount: money.FromCentavos(pendingAmount),
		PendingFee:    money.FromCentavos(pendingFee),
	}
}
