package reversal

import (
	"time"

	"github.com/google/uuid"
)

// Reversal is the GORM model for the undo_transactions table.
type Reversal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID  uuid.UUID `gorm:"type:uuid;index;not null"`
	AmountCentavos int64     `gorm:"not null"`
	FeeCentavos    int64     `gorm:"not null"`
	Type           string    `gorm:"type:varchar(16);not null"`
	OriginalType   string    `gorm:"type:varchar(16);not null"`
	CustomerNumber string    `gorm:"type:varchar(32)"`
	CreatedAt      time.Time `gorm:"index;not null"`
}

// TableName overrides the default table name.
func (Reversal) TableName() string {
	return "undo_transactions"
}
