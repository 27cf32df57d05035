package fundlog

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

// New creates a fund log repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.FundLogRepository {
	return &repo{db: db}
}

// Create implements repository.FundLogRepository.
func (r *repo) Create(ctx context.Context, entry *ledger.FundLogEntry) error {
	row := mapDomainToModel(entry)
	return r.db.WithContext(ctx).Create(&row).Error
}

// List implements repository.FundLogRepository.
func (r *repo) List(ctx context.Context) ([]*ledger.FundLogEntry, error) {
	var rows []FundLogEntry
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.FundLogEntry, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapDomainToModel(entry *ledger.FundLogEntry) FundLogEntry {
	return FundLogEntry{
		ID:                     entry.ID,
		PreviousCashCentavos:   entry.PreviousCash.Centavos(),
		PreviousWalletCentavos: entry.PreviousWallet.Centavos(),
		UpdatedCashCentavos:    entry.UpdatedCash.Centavos(),
		UpdatedWalletCentavos:  entry.UpdatedWallet.Centavos(),
		Description:            entry.Description,
		Kind:                   string(entry.Kind),
		CreatedAt:              entry.CreatedAt,
	}
}

func mapModelToDomain(row *FundLogEntry) *ledger.FundLogEntry {
	return &ledger.FundLogEntry{
		ID:             row.ID,
		PreviousCash:   money.FromCentavos(row.PreviousCashCentavos),
		PreviousWallet: money.FromCentavos(row.PreviousWalletCentavos),
		UpdatedCash:    money.FromCentavos(row.UpdatedCashCentavos),
		UpdatedWallet:  money.FromCentavos(row.UpdatedWalletCentavos),
		Description:    row.Description,
		Kind:           ledger.AdjustmentKind(row.Kind),
		CreatedAt:      row.CreatedAt,
	}
}
