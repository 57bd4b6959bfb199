package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card status values.
const (
	CardStatusActive  = "active"
	CardStatusFrozen  = "frozen"
	CardStatusBlocked = "blocked"
)

// VirtualCard is tied 1:1 to the user's e-atm wallet. The CVV is stored
// only as a bcrypt hash and the number leaves the server masked.
// Daily and monthly limits are declared but not enforced.
type VirtualCard struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	UserID       uint            `gorm:"uniqueIndex;not null" json:"userId"`
	WalletID     uint            `gorm:"uniqueIndex;not null" json:"walletId"`
	CardNumber   string          `gorm:"not null" json:"cardNumber"`
	ExpiryDate   string          `gorm:"not null" json:"expiryDate"`
	CVVHash      string          `gorm:"not null" json:"-"`
	Status       string          `gorm:"default:'active'" json:"status"`
	DailyLimit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"dailyLimit"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthlyLimit"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"-"`
}
