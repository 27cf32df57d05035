package expense

import (
	"time"

	"github.com/google/uuid"
)

// Expense is the GORM model for the expenses table.
type Expense struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmountCentavos        int64     `gorm:"not null"`
	Source                string    `gorm:"type:varchar(16);not null"`
	Description           string    `gorm:"type:varchar(255);not null"`
	UpdatedCashCentavos   int64     `gorm:"not null"`
	UpdatedWalletCentavos int64     `gorm:"not null"`
	CreatedAt             time.Time `gorm:"index;not null"`
}

// TableName overrides the default table name.
func (Expense) TableName() string {
	return "expenses"
}
