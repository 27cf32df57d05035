package infrarepository

import (
	"github.com/rmercado/kahera/infra/repository/customer"
	"github.com/rmercado/kahera/infra/repository/dailysummary"
	"github.com/rmercado/kahera/infra/repository/expense"
	"github.com/rmercado/kahera/infra/repository/fundlog"
	"github.com/rmercado/kahera/infra/repository/funds"
	"github.com/rmercado/kahera/infra/repository/reversal"
	"github.com/rmercado/kahera/infra/repository/transaction"
	"gorm.io/gorm"
)

// Migrate creates or updates the ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&funds.Funds{},
		&transaction.Transaction{},
		&reversal.Reversal{},
		&fundlog.FundLogEntry{},
		&expense.Expense{},
		&dailysummary.DailySummary{},
		&customer.Customer{},
	)
}
