package fundlog

import (
	"time"

	"github.com/google/uuid"
)

// FundLogEntry is the GORM model for the fund_update_logs table.
type FundLogEntry struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PreviousCashCentavos   int64     `gorm:"not null"`
	PreviousWalletCentavos int64     `gorm:"not null"`
	UpdatedCashCentavos    int64     `gorm:"not null"`
	UpdatedWalletCentavos  int64     `gorm:"not null"`
	Description            string    `gorm:"type:varchar(255)"`
	Kind                   string    `gorm:"type:varchar(16);not null"`
	CreatedAt              time.Time `gorm:"index;not null"`
}

// TableName overrides the default table name.
func (FundLogEntry) TableName() string {
	return "fund_update_logs"
}
