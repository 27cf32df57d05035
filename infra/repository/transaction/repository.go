package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

// Create implements repository.TransactionRepository.
func (r *repo) Create(ctx context.Context, tx *ledger.Transaction) error {
	row := mapDomainToModel(tx)
	return r.db.WithContext(ctx).Create(&row).Error
}

// Get implements repository.TransactionRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var row Transaction
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDomain(&row), nil
}

// List implements repository.TransactionRepository.
func (r *repo) List(ctx context.Context) ([]*ledger.Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDomain(rows), nil
}

// ListByDateRange implements repository.TransactionRepository.
func (r *repo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*ledger.Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDomain(rows), nil
}

// ListByStatus implements repository.TransactionRepository.
func (r *repo) ListByStatus(ctx context.Context, statuses ...ledger.Status) ([]*ledger.Transaction, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Where("status IN ?", values).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDomain(rows), nil
}

// UpdateStatus implements repository.TransactionRepository.
func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.Status, paidAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	result := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ledger.ErrTransactionNotFound
	}
	return nil
}

// Delete implements repository.TransactionRepository.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ledger.ErrTransactionNotFound
	}
	return nil
}

func mapDomainToModel(tx *ledger.Transaction) Transaction {
	return Transaction{
		ID:             tx.ID,
		AmountCentavos: tx.Amount.Centavos(),
		FeeCentavos:    tx.Fee.Centavos(),
		Type:           string(tx.Type),
		FeeFund:        string(tx.FeeFund),
		Status:         string(tx.Status),
		CustomerNumber: tx.CustomerNumber,
		PayeeName:      tx.PayeeName,
		CreatedAt:      tx.CreatedAt,
		PaidAt:         tx.PaidAt,
	}
}

func mapModelToDomain(row *Transaction) *ledger.Transaction {
	return &ledger.Transaction{
		ID:             row.ID,
		Amount:         money.FromCentavos(row.AmountCentavos),
		Fee:            money.FromCentavos(row.FeeCentavos),
		Type:           ledger.Type(row.Type),
		FeeFund:        ledger.FeeFund(row.FeeFund),
		Status:         ledger.Status(row.Status),
		CustomerNumber: row.CustomerNumber,
		PayeeName:      row.PayeeName,
		CreatedAt:      row.CreatedAt,
		PaidAt:         row.PaidAt,
	}
}

func mapModelsToDomain(rows []Transaction) []*ledger.Transaction {
	out := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out
}
