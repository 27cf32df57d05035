package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is the GORM model for the customers table.
type Customer struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CardNumber  string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name        string          `gorm:"type:varchar(128);not null"`
	Phone       string          `gorm:"type:varchar(32)"`
	Points      decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName overrides the default table name.
func (Customer) TableName() string {
	return "customers"
}
