package dailysummary

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the GORM model for the daily_updates table.
type DailySummary struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date             time.Time `gorm:"index;not null"`
	TotalFeeCentavos int64     `gorm:"not null"`
	CashCentavos     int64     `gorm:"not null"`
	WalletCentavos   int64     `gorm:"not null"`
}

// TableName overrides the default table name.
func (DailySummary) TableName() string {
	return "daily_updates"
}
