package reversal

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

// New creates a reversal repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.ReversalRepository {
	return &repo{db: db}
}

// Create implements repository.ReversalRepository.
func (r *repo) Create(ctx context.Context, rev *ledger.Reversal) error {
	row := mapDomainToModel(rev)
	return r.db.WithContext(ctx).Create(&row).Error
}

// List implements repository.ReversalRepository.
func (r *repo) List(ctx context.Context) ([]*ledger.Reversal, error) {
	var rows []Reversal
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Reversal, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapDomainToModel(rev *ledger.Reversal) Reversal {
	return Reversal{
		ID:             rev.ID,
		TransactionID:  rev.TransactionID,
		AmountCentavos: rev.Amount.Centavos(),
		FeeCentavos:    rev.Fee.Centavos(),
		Type:           string(rev.Type),
		OriginalType:   string(rev.OriginalType),
		CustomerNumber: rev.CustomerNumber,
		CreatedAt:      rev.CreatedAt,
	}
}

func mapModelToDomain(row *Reversal) *ledger.Reversal {
	return &ledger.Reversal{
		ID:             row.ID,
		TransactionID:  row.TransactionID,
		Amount:         money.FromCentavos(row.AmountCentavos),
		Fee:            money.FromCentavos(row.FeeCentavos),
		Type:           ledger.Type(row.Type),
		OriginalType:   ledger.Type(row.OriginalType),
		CustomerNumber: row.CustomerNumber,
		CreatedAt:      row.CreatedAt,
	}
}
