// Package testutils provides in-memory test doubles for the repository
// contracts.
package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/domain/loyalty"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
)

// MemoryUoW is an in-memory repository.UnitOfWork. Writes are applied
// eagerly; there is no rollback, so a test asserting untouched state must
// arrange for the failing step to come before any write.
type MemoryUoW struct {
	mu sync.Mutex

	funds     *ledger.Funds
	txs       []*ledger.Transaction
	reversals []*ledger.Reversal
	fundLogs  []*ledger.FundLogEntry
	expenses  []*ledger.Expense
	summaries []*ledger.DailySummary
	customers []*loyalty.Customer

	// Fault injection, applied once per configured error.
	GetFundsErr  error
	SaveFundsErr error
	CreateTxErr  error
}

// NewMemoryUoW returns an empty in-memory store.
func NewMemoryUoW() *MemoryUoW { return &MemoryUoW{} }

// SeedFunds sets the fund balances directly, in centavos.
func (u *MemoryUoW) SeedFunds(cashCentavos, walletCentavos int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.funds = &ledger.Funds{
		Cash:   money.FromCentavos(cashCentavos),
		Wallet: money.FromCentavos(walletCentavos),
	}
}

// Do runs fn against this store. The fake provides mutual exclusion in place
// of a database transaction.
func (u *MemoryUoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(&txUoW{store: u})
}

// FundsRepository implements repository.UnitOfWork.
func (u *MemoryUoW) FundsRepository() (repository.FundsRepository, error) {
	return &fundsRepo{store: u, locked: false}, nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *MemoryUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &txRepo{store: u, locked: false}, nil
}

// ReversalRepository implements repository.UnitOfWork.
func (u *MemoryUoW) ReversalRepository() (repository.ReversalRepository, error) {
	return &revRepo{store: u, locked: false}, nil
}

// FundLogRepository implements repository.UnitOfWork.
func (u *MemoryUoW) FundLogRepository() (repository.FundLogRepository, error) {
	return &fundLogRepo{store: u, locked: false}, nil
}

// ExpenseRepository implements repository.UnitOfWork.
func (u *MemoryUoW) ExpenseRepository() (repository.ExpenseRepository, error) {
	return &expenseRepo{store: u, locked: false}, nil
}

// DailySummaryRepository implements repository.UnitOfWork.
func (u *MemoryUoW) DailySummaryRepository() (repository.DailySummaryRepository, error) {
	return &summaryRepo{store: u, locked: false}, nil
}

// CustomerRepository implements repository.UnitOfWork.
func (u *MemoryUoW) CustomerRepository() (repository.CustomerRepository, error) {
	return &customerRepo{store: u, locked: false}, nil
}

// txUoW is the view handed to Do callbacks; its repositories skip locking
// because Do already holds the store mutex.
type txUoW struct {
	store *MemoryUoW
}

func (t *txUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *txUoW) FundsRepository() (repository.FundsRepository, error) {
	return &fundsRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &txRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) ReversalRepository() (repository.ReversalRepository, error) {
	return &revRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) FundLogRepository() (repository.FundLogRepository, error) {
	return &fundLogRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) ExpenseRepository() (repository.ExpenseRepository, error) {
	return &expenseRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) DailySummaryRepository() (repository.DailySummaryRepository, error) {
	return &summaryRepo{store: t.store, locked: true}, nil
}

func (t *txUoW) CustomerRepository() (repository.CustomerRepository, error) {
	return &customerRepo{store: t.store, locked: true}, nil
}

type fundsRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *fundsRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fundsRepo) Get(context.Context) (ledger.Funds, error) {
	defer r.lock()()
	if err := r.store.GetFundsErr; err != nil {
		r.store.GetFundsErr = nil
		return ledger.Funds{}, err
	}
	if r.store.funds == nil {
		return ledger.Funds{}, ledger.ErrFundsNotFound
	}
	return *r.store.funds, nil
}

func (r *fundsRepo) Save(_ context.Context, funds ledger.Funds) error {
	defer r.lock()()
	if err := r.store.SaveFundsErr; err != nil {
		r.store.SaveFundsErr = nil
		return err
	}
	r.store.funds = &funds
	return nil
}

type txRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *txRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *txRepo) Create(_ context.Context, tx *ledger.Transaction) error {
	defer r.lock()()
	if err := r.store.CreateTxErr; err != nil {
		r.store.CreateTxErr = nil
		return err
	}
	cp := *tx
	r.store.txs = append(r.store.txs, &cp)
	return nil
}

func (r *txRepo) Get(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	defer r.lock()()
	for _, tx := range r.store.txs {
		if tx.ID == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, ledger.ErrTransactionNotFound
}

func (r *txRepo) List(context.Context) ([]*ledger.Transaction, error) {
	defer r.lock()()
	out := make([]*ledger.Transaction, 0, len(r.store.txs))
	for _, tx := range r.store.txs {
		cp := *tx
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *txRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]*ledger.Transaction, error) {
	defer r.lock()()
	var out []*ledger.Transaction
	for _, tx := range r.store.txs {
		if !tx.CreatedAt.Before(from) && tx.CreatedAt.Before(to) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *txRepo) ListByStatus(_ context.Context, statuses ...ledger.Status) ([]*ledger.Transaction, error) {
	defer r.lock()()
	var out []*ledger.Transaction
	for _, tx := range r.store.txs {
		for _, status := range statuses {
			if tx.Status == status {
				cp := *tx
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *txRepo) UpdateStatus(_ context.Context, id uuid.UUID, status ledger.Status, paidAt *time.Time) error {
	defer r.lock()()
	for _, tx := range r.store.txs {
		if tx.ID == id {
			tx.Status = status
			if paidAt != nil {
				tx.PaidAt = paidAt
			}
			return nil
		}
	}
	return ledger.ErrTransactionNotFound
}

func (r *txRepo) Delete(_ context.Context, id uuid.UUID) error {
	defer r.lock()()
	for i, tx := range r.store.txs {
		if tx.ID == id {
			r.store.txs = append(r.store.txs[:i], r.store.txs[i+1:]...)
			return nil
		}
	}
	return ledger.ErrTransactionNotFound
}

type revRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *revRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *revRepo) Create(_ context.Context, rev *ledger.Reversal) error {
	defer r.lock()()
	cp := *rev
	r.store.reversals = append(r.store.reversals, &cp)
	return nil
}

func (r *revRepo) List(context.Context) ([]*ledger.Reversal, error) {
	defer r.lock()()
	out := make([]*ledger.Reversal, len(r.store.reversals))
	copy(out, r.store.reversals)
	return out, nil
}

type fundLogRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *fundLogRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fundLogRepo) Create(_ context.Context, entry *ledger.FundLogEntry) error {
	defer r.lock()()
	cp := *entry
	r.store.fundLogs = append(r.store.fundLogs, &cp)
	return nil
}

func (r *fundLogRepo) List(context.Context) ([]*ledger.FundLogEntry, error) {
	defer r.lock()()
	out := make([]*ledger.FundLogEntry, len(r.store.fundLogs))
	copy(out, r.store.fundLogs)
	return out, nil
}

type expenseRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *expenseRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *expenseRepo) Create(_ context.Context, exp *ledger.Expense) error {
	defer r.lock()()
	cp := *exp
	r.store.expenses = append(r.store.expenses, &cp)
	return nil
}

func (r *expenseRepo) List(context.Context) ([]*ledger.Expense, error) {
	defer r.lock()()
	out := make([]*ledger.Expense, len(r.store.expenses))
	copy(out, r.store.expenses)
	return out, nil
}

type summaryRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *summaryRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *summaryRepo) Create(_ context.Context, summary *ledger.DailySummary) error {
	defer r.lock()()
	cp := *summary
	r.store.summaries = append(r.store.summaries, &cp)
	return nil
}

func (r *summaryRepo) List(context.Context) ([]*ledger.DailySummary, error) {
	defer r.lock()()
	out := make([]*ledger.DailySummary, len(r.store.summaries))
	copy(out, r.store.summaries)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type customerRepo struct {
	store  *MemoryUoW
	locked bool
}

func (r *customerRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *customerRepo) Create(_ context.Context, customer *loyalty.Customer) error {
	defer r.lock()()
	for _, c := range r.store.customers {
		if c.CardNumber == customer.CardNumber {
			return loyalty.ErrCardNumberTaken
		}
	}
	cp := *customer
	r.store.customers = append(r.store.customers, &cp)
	return nil
}

func (r *customerRepo) GetByCardNumber(_ context.Context, cardNumber string) (*loyalty.Customer, error) {
	defer r.lock()()
	for _, c := range r.store.customers {
		if c.CardNumber == cardNumber {
			cp := *c
			return &cp, nil
		}
	}
	return nil, loyalty.ErrCustomerNotFound
}

func (r *customerRepo) Update(_ context.Context, customer *loyalty.Customer) error {
	defer r.lock()()
	for i, c := range r.store.customers {
		if c.ID == customer.ID {
			cp := *customer
			r.store.customers[i] = &cp
			return nil
		}
	}
	return loyalty.ErrCustomerNotFound
}

func (r *customerRepo) List(context.Context) ([]*loyalty.Customer, error) {
	defer r.lock()()
	out := make([]*loyalty.Customer, len(r.store.customers))
	copy(out, r.store.customers)
	return out, nil
}
