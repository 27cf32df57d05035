package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/money"
)

// Type identifies what a transaction does at the counter.
type Type string

const (
	// TypeCashIn converts a customer's physical cash into wallet credit.
	TypeCashIn Type = "cash-in"
	// TypeCashOut converts a customer's wallet credit into physical cash.
	TypeCashOut Type = "cash-out"
	// TypeLoad sells mobile airtime, drawn from the wallet fund.
	TypeLoad Type = "load"
	// TypeUndo marks a compensating reversal record.
	TypeUndo Type = "undo"
)

// Valid reports whether the type is one a customer can request.
func (t Type) Valid() bool {
	return t == TypeCashIn || t == TypeCashOut || t == TypeLoad
}

// FeeFund selects which fund collects the service fee.
type FeeFund string

const (
	// FeeFundCash places the fee in the cash drawer.
	FeeFundCash FeeFund = "cash"
	// FeeFundWallet places the fee in the GCash wallet.
	FeeFundWallet FeeFund = "wallet"
)

// Valid reports whether the fee placement is recognized.
func (f FeeFund) Valid() bool {
	return f == FeeFundCash || f == FeeFundWallet
}

// Status is a transaction's settlement state.
type Status string

const (
	// StatusPending marks a recorded but not yet collected transaction.
	StatusPending Status = "pending"
	// StatusCompleted marks a settled transaction.
	StatusCompleted Status = "completed"
	// StatusPaid marks a pending transaction whose payment was collected.
	StatusPaid Status = "paid"
	// StatusReversed marks a transaction whose effect has been undone.
	// The value matches what the counter's historical exports used.
	StatusReversed Status = "undotransact"
)

// Transaction is one cash-in, cash-out or load event at the counter.
// Amount and fee are immutable once recorded; a reversal creates a separate
// compensating record instead of editing this one.
type Transaction struct {
	ID             uuid.UUID
	Amount         money.Money
	Fee            money.Money
	Type           Type
	FeeFund        FeeFund
	Status         Status
	CustomerNumber string
	PayeeName      string
	CreatedAt      time.Time
	PaidAt         *time.Time
}

// Delta returns the transaction's forward effect on the funds.
//
//   - cash-in:  cash += amount, wallet -= amount
//   - cash-out: cash -= amount, wallet += amount
//   - load:     wallet -= amount
//
// plus the fee credited to the selected fee fund. Reversal is defined as
// the exact negation of this delta for every type.
func (t *Transaction) Delta() Delta {
	var d Delta
	switch t.Type {
	case TypeCashIn:
		d.Cash = t.Amount
		d.Wallet = t.Amount.Negate()
	case TypeCashOut:
		d.Cash = t.Amount.Negate()
		d.Wallet = t.Amount
	case TypeLoad:
		d.Wallet = t.Amount.Negate()
	}
	switch t.FeeFund {
	case FeeFundCash:
		d.Cash = money.FromCentavos(d.Cash.Centavos() + t.Fee.Centavos())
	case FeeFundWallet:
		d.Wallet = money.FromCentavos(d.Wallet.Centavos() + t.Fee.Centavos())
	}
	return d
}

// Reversed reports whether the transaction has already been undone.
func (t *Transaction) Reversed() bool {
	return t.Status == StatusReversed
}

// Builder constructs valid transactions.
type Builder struct {
	id             uuid.UUID
	amount         money.Money
	fee            money.Money
	feeQuoted      bool
	txType         Type
	feeFund        FeeFund
	pending        bool
	customerNumber string
	payeeName      string
	createdAt      time.Time
}

// NewTransaction returns a Builder with a fresh ID, the current time, and the
// fee left to be quoted from the amount.
func NewTransaction() *Builder {
	return &Builder{
		id:        uuid.New(),
		txType:    TypeCashIn,
		feeFund:   FeeFundCash,
		createdAt: time.Now(),
	}
}

// WithID sets the transaction ID. Used when hydrating from storage.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithAmount sets the transaction amount.
func (b *Builder) WithAmount(amount money.Money) *Builder {
	b.amount = amount
	return b
}

// WithFee overrides the quoted fee with an explicit value. The override is
// used verbatim and never validated against the quote formula.
func (b *Builder) WithFee(fee money.Money) *Builder {
	b.fee = fee
	b.feeQuoted = true
	return b
}

// WithType sets the transaction type.
func (b *Builder) WithType(t Type) *Builder {
	b.txType = t
	return b
}

// WithFeeFund sets which fund collects the fee.
func (b *Builder) WithFeeFund(f FeeFund) *Builder {
	b.feeFund = f
	return b
}

// Pending marks the transaction as recorded but not yet collected.
func (b *Builder) Pending(pending bool) *Builder {
	b.pending = pending
	return b
}

// WithCustomerNumber sets the customer's GCash number.
func (b *Builder) WithCustomerNumber(number string) *Builder {
	b.customerNumber = number
	return b
}

// WithPayeeName sets the payee's name, required for pending transactions.
func (b *Builder) WithPayeeName(name string) *Builder {
	b.payeeName = name
	return b
}

// WithCreatedAt sets the creation timestamp. Used when hydrating from storage.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the invariants and returns the transaction. The fee
// defaults to QuoteFee(amount) when no override was supplied.
func (b *Builder) Build() (*Transaction, error) {
	if !b.amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if !b.txType.Valid() {
		return nil, ErrInvalidType
	}
	if !b.feeFund.Valid() {
		return nil, ErrInvalidFeeFund
	}
	if b.customerNumber == "" {
		return nil, ErrCustomerNumberRequired
	}
	if b.pending && b.payeeName == "" {
		return nil, ErrPayeeNameRequired
	}
	fee := b.fee
	if !b.feeQuoted {
		fee = QuoteFee(b.amount)
	}
	if fee.IsNegative() {
		return nil, ErrFeeMustNotBeNegative
	}
	status := StatusCompleted
	payee := ""
	if b.pending {
		status = StatusPending
		payee = b.payeeName
	}
	return &Transaction{
		ID:             b.id,
		Amount:         b.amount,
		Fee:            fee,
		Type:           b.txType,
		FeeFund:        b.feeFund,
		Status:         status,
		CustomerNumber: b.customerNumber,
		PayeeName:      payee,
		CreatedAt:      b.createdAt,
	}, nil
}
