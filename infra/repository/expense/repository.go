package expense

import (
	"context"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates an expense repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.ExpenseRepository {
	return &repo{db: db}
}

// Create implements repository.ExpenseRepository.
func (r *repo) Create(ctx context.Context, expense *ledger.Expense) error {
	row := mapDomainToModel(expense)
	return r.db.WithContext(ctx).Create(&row).Error
}

// List implements repository.ExpenseRepository.
func (r *repo) List(ctx context.Context) ([]*ledger.Expense, error) {
	var rows []Expense
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Expense, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapDomainToModel(expense *ledger.Expense) Expense {
	return Expense{
		ID:                    expense.ID,
		AmountCentavos:        expense.Amount.Centavos(),
		Source:                string(expense.Source),
		Description:           expense.Description,
		UpdatedCashCentavos:   expense.UpdatedCash.Centavos(),
		UpdatedWalletCentavos: expense.UpdatedWallet.Centavos(),
		CreatedAt:             expense.CreatedAt,
	}
}

func mapModelToDomain(row *Expense) *ledger.Expense {
	return &ledger.Expense{
		ID:            row.ID,
		Amount:        money.FromCentavos(row.AmountCentavos),
		Source:        ledger.FundSource(row.Source),
		Description:   row.Description,
		UpdatedCash:   money.FromCentavos(row.UpdatedCashCentavos),
		UpdatedWallet: money.FromCentavos(row.UpdatedWalletCentavos),
		CreatedAt:     row.CreatedAt,
	}
}
