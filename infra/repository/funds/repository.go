package funds

import (
	"context"
	"errors"
	"time"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// New creates a funds repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.FundsRepository {
	return &repo{db: db}
}

// Get implements repository.FundsRepository. Inside a transaction the row is
// read with SELECT ... FOR UPDATE so concurrent mutations serialize.
func (r *repo) Get(ctx context.Context) (ledger.Funds, error) {
	var row Funds
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", ledger.FundsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.Funds{}, ledger.ErrFundsNotFound
	}
	if err != nil {
		return ledger.Funds{}, err
	}
	return mapModelToDomain(&row), nil
}

// Save implements repository.FundsRepository as an upsert on the fixed row.
func (r *repo) Save(ctx context.Context, funds ledger.Funds) error {
	row := mapDomainToModel(funds)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func mapModelToDomain(row *Funds) ledger.Funds {
	return ledger.Funds{
		Cash:      money.FromCentavos(row.CashCentavos),
		Wallet:    money.FromCentavos(row.WalletCentavos),
		UpdatedAt: row.UpdatedAt,
	}
}

func mapDomainToModel(funds ledger.Funds) Funds {
	updatedAt := funds.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return Funds{
		ID:             ledger.FundsID,
		CashCentavos:   funds.Cash.Centavos(),
		WalletCentavos: funds.Wallet.Centavos(),
		UpdatedAt:      updatedAt,
	}
}
