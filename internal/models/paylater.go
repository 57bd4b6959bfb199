package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayLater account status values.
const (
	PaylaterStatusActive    = "active"
	PaylaterStatusSuspended = "suspended"
)

// PaylaterAccount is the credit-line record behind the paylater wallet.
// Used is not reconciled on EMI conversion; see DESIGN.md.
type PaylaterAccount struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"uniqueIndex;not null" json:"userId"`
	WalletID    uint            `gorm:"uniqueIndex;not null" json:"walletId"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"creditLimit"`
	Used        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"used"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Status      string          `gorm:"default:'active'" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"-"`
}
