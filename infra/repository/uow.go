// Package infrarepository provides the GORM-backed unit of work and the
// persistence wiring for the ledger stores.
package infrarepository

import (
	"context"

	"github.com/rmercado/kahera/infra/repository/customer"
	"github.com/rmercado/kahera/infra/repository/dailysummary"
	"github.com/rmercado/kahera/infra/repository/expense"
	"github.com/rmercado/kahera/infra/repository/fundlog"
	"github.com/rmercado/kahera/infra/repository/funds"
	"github.com/rmercado/kahera/infra/repository/reversal"
	"github.com/rmercado/kahera/infra/repository/transaction"
	"github.com/rmercado/kahera/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the transaction
// session, so a transaction record and the updated balances either both
// land or neither does.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW
// whose repositories are bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction session inside Do, the root connection
// outside it.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// FundsRepository implements repository.UnitOfWork.
func (u *UoW) FundsRepository() (repository.FundsRepository, error) {
	return funds.New(u.session()), nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return transaction.New(u.session()), nil
}

// ReversalRepository implements repository.UnitOfWork.
func (u *UoW) ReversalRepository() (repository.ReversalRepository, error) {
	return reversal.New(u.session()), nil
}

// FundLogRepository implements repository.UnitOfWork.
func (u *UoW) FundLogRepository() (repository.FundLogRepository, error) {
	return fundlog.New(u.session()), nil
}

// ExpenseRepository implements repository.UnitOfWork.
func (u *UoW) ExpenseRepository() (repository.ExpenseRepository, error) {
	return expense.New(u.session()), nil
}

// DailySummaryRepository implements repository.UnitOfWork.
func (u *UoW) DailySummaryRepository() (repository.DailySummaryRepository, error) {
	return dailysummary.New(u.session()), nil
}

// CustomerRepository implements repository.UnitOfWork.
func (u *UoW) CustomerRepository() (repository.CustomerRepository, error) {
	return customer.New(u.session()), nil
}
