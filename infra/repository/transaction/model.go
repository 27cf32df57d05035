package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a counter transaction row.
type Transaction struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmountCentavos int64     `gorm:"not null"`
	FeeCentavos    int64     `gorm:"not null"`
	Type           string    `gorm:"type:varchar(16);not null;index"`
	FeeFund        string    `gorm:"type:varchar(16);not null"`
	Status         string    `gorm:"type:varchar(16);not null;index"`
	CustomerNumber string    `gorm:"type:varchar(32);not null"`
	PayeeName      string    `gorm:"type:varchar(128)"`
	CreatedAt      time.Time `gorm:"index"`
	PaidAt         *time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
