package dailysummary

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

// New creates a daily summary repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.DailySummaryRepository {
	return &repo{db: db}
}

// Create implements repository.DailySummaryRepository.
func (r *repo) Create(ctx context.Context, summary *ledger.DailySummary) error {
	row := mapDomainToModel(summary)
	return r.db.WithContext(ctx).Create(&row).Error
}

// List implements repository.DailySummaryRepository.
func (r *repo) List(ctx context.Context) ([]*ledger.DailySummary, error) {
	var rows []DailySummary
	err := r.db.WithContext(ctx).Order("date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.DailySummary, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapDomainToModel(summary *ledger.DailySummary) DailySummary {
	return DailySummary{
		ID:               summary.ID,
		Date:             summary.Date,
		TotalFeeCentavos: summary.TotalFee.Centavos(),
		CashCentavos:     summary.Cash.Centavos(),
		WalletCentavos:   summary.Wallet.Centavos(),
	}
}

func mapModelToDomain(row *DailySummary) *ledger.DailySummary {
	return &ledger.DailySummary{
		ID:       row.ID,
		Date:     row.Date,
		TotalFee: money.FromCentavos(row.TotalFeeCentavos),
		Cash:     money.FromCentavos(row.CashCentavos),
		Wallet:   money.FromCentavos(row.WalletCentavos),
	}
}
