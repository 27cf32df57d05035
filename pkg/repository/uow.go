package repository

import "context"

// UnitOfWork bundles a transaction boundary with repository access.
//
// All repositories obtained inside Do share the same database session, so a
// transaction record and the updated balances either both land or neither
// does. The fire-and-forget double write this replaces left the balances and
// the transaction log free to drift apart.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. fn receives a
	// UnitOfWork whose repositories are bound to that transaction; an error
	// from fn rolls everything back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	FundsRepository() (FundsRepository, error)
	TransactionRepository() (TransactionRepository, error)
	ReversalRepository() (ReversalRepository, error)
	FundLogRepository() (FundLogRepository, error)
	ExpenseRepository() (ExpenseRepository, error)
	DailySummaryRepository() (DailySummaryRepository, error)
	CustomerRepository() (CustomerRepository, error)
}
