package customer

import (
	"context"
	"errors"

	"github.com/rmercado/kahera/pkg/domain/loyalty"
	"github.com/rmercado/kahera/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a customer repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.CustomerRepository {
	return &repo{db: db}
}

// Create implements repository.CustomerRepository.
func (r *repo) Create(ctx context.Context, customer *loyalty.Customer) error {
	row := mapDomainToModel(customer)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return loyalty.ErrCardNumberTaken
	}
	return err
}

// GetByCardNumber implements repository.CustomerRepository.
func (r *repo) GetByCardNumber(ctx context.Context, cardNumber string) (*loyalty.Customer, error) {
	var row Customer
	err := r.db.WithContext(ctx).First(&row, "card_number = ?", cardNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loyalty.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDomain(&row), nil
}

// Update implements repository.CustomerRepository.
func (r *repo) Update(ctx context.Context, customer *loyalty.Customer) error {
	row := mapDomainToModel(customer)
	result := r.db.WithContext(ctx).Model(&Customer{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":         row.Name,
			"phone":        row.Phone,
			"points":       row.Points,
			"total_amount": row.TotalAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return loyalty.ErrCustomerNotFound
	}
	return nil
}

// List implements repository.CustomerRepository.
func (r *repo) List(ctx context.Context) ([]*loyalty.Customer, error) {
	var rows []Customer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*loyalty.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapDomainToModel(customer *loyalty.Customer) Customer {
	return Customer{
		ID:          customer.ID,
		CardNumber:  customer.CardNumber,
		Name:        customer.Name,
		Phone:       customer.Phone,
		Points:      customer.Points,
		TotalAmount: customer.TotalAmount,
		CreatedAt:   customer.CreatedAt,
	}
}

func mapModelToDomain(row *Customer) *loyalty.Customer {
	return &loyalty.Customer{
		ID:          row.ID,
		CardNumber:  row.CardNumber,
		Name:        row.Name,
		Phone:       row.Phone,
		Points:      row.Points,
		TotalAmount: row.TotalAmount,
		CreatedAt:   row.CreatedAt,
	}
}
