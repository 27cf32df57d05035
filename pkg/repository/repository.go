// Package repository defines the data-access contracts the services depend
// on, together with the UnitOfWork transaction boundary.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/domain/loyalty"
)

// FundsRepository manages the singleton fund balances row.
type FundsRepository interface {
	// Get returns the current balances. Inside a UnitOfWork the row is read
	// with a write lock so concurrent mutations serialize on the store.
	Get(ctx context.Context) (ledger.Funds, error)
	// Save creates the row on first use and overwrites it afterwards.
	Save(ctx context.Context, funds ledger.Funds) error
}

// TransactionRepository manages transaction records.
type TransactionRepository interface {
	Create(ctx context.Context, tx *ledger.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	// List returns all transactions, newest first.
	List(ctx context.Context) ([]*ledger.Transaction, error)
	// ListByDateRange returns transactions created within [from, to).
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*ledger.Transaction, error)
	// ListByStatus returns transactions whose status is one of the given.
	ListByStatus(ctx context.Context, statuses ...ledger.Status) ([]*ledger.Transaction, error)
	// UpdateStatus flips a transaction's status, stamping paidAt when given.
	UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.Status, paidAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReversalRepository manages the append-only compensating records.
type ReversalRepository interface {
	Create(ctx context.Context, rev *ledger.Reversal) error
	List(ctx context.Context) ([]*ledger.Reversal, error)
}

// FundLogRepository manages the append-only fund adjustment audit log.
type FundLogRepository interface {
	Create(ctx context.Context, entry *ledger.FundLogEntry) error
	List(ctx context.Context) ([]*ledger.FundLogEntry, error)
}

// ExpenseRepository manages the append-only expense records.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *ledger.Expense) error
	List(ctx context.Context) ([]*ledger.Expense, error)
}

// DailySummaryRepository manages close-of-day snapshots.
type DailySummaryRepository interface {
	Create(ctx context.Context, summary *ledger.DailySummary) error
	// List returns summaries newest first.
	List(ctx context.Context) ([]*ledger.DailySummary, error)
}

// CustomerRepository manages loyalty program members.
type CustomerRepository interface {
	Create(ctx context.Context, customer *loyalty.Customer) error
	GetByCardNumber(ctx context.Context, cardNumber string) (*loyalty.Customer, error)
	Update(ctx context.Context, customer *loyalty.Customer) error
	List(ctx context.Context) ([]*loyalty.Customer, error)
}
