package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// Transaction records a single balance movement against a wallet.
// Amount is an unsigned magnitude; Type carries the direction.
// Rows are immutable once created.
type Transaction struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"userId"`
	WalletID    uint            `gorm:"index;not null" json:"walletId"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Merchant    string          `gorm:"not null" json:"merchant"`
	Category    string          `gorm:"not null" json:"category"`
	Type        string          `gorm:"not null" json:"type"`
	Description string          `json:"description,omitempty"`
	Reference   string          `gorm:"uniqueIndex" json:"reference"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}
