package funds

import "time"

// Funds is the singleton balances row.
type Funds struct {
	ID             string `gorm:"primaryKey;type:varchar(32)"`
	CashCentavos   int64  `gorm:"not null;default:0"`
	WalletCentavos int64  `gorm:"not null;default:0"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Funds model.
func (Funds) TableName() string {
	return "funds"
}
