package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// Reversal is the compensating record created when a transaction is undone.
// It carries the negated amount and fee of the original; the original row is
// kept and its status flipped to StatusReversed.
type Reversal struct {
	ID             uuid.UUID
	TransactionID  uuid.UUID
	Amount         money.Money // negated original amount
	Fee            money.Money // negated original fee
	Type           Type        // always TypeUndo
	OriginalType   Type
	CustomerNumber string
	CreatedAt      time.Time
}

// NewReversal builds the compensating record for the given transaction.
func NewReversal(tx *Transaction) *Reversal {
	return &Reversal{
		ID:             uuid.New(),
		TransactionID:  tx.ID,
		Amount:         tx.Amount.Negate(),
		Fee:            tx.Fee.Negate(),
		Type:           TypeUndo,
		OriginalType:   tx.Type,
		CustomerNumber: tx.CustomerNumber,
		CreatedAt:      time.Now(),
	}
}

// ReversalPreview is the dry-run result of the two-step undo flow: what the
// balances would become if the reversal were confirmed.
type ReversalPreview struct {
	TransactionID uuid.UUID
	Amount        money.Money
	Fee           money.Money
	Delta         Delta // the delta a confirmation would apply
	Cash          money.Money
	Wallet        money.Money
}
