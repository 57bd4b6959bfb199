package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet types. Every user owns exactly one wallet of each type.
const (
	WalletTypeCash     = "cash"
	WalletTypeEATM     = "e-atm"
	WalletTypePaylater = "paylater"
	WalletTypeRewards  = "rewards"
)

// Balance units.
const (
	UnitINR    = "INR"
	UnitPoints = "pts"
)

// Wallet is a typed balance bucket. Balance is mutated only by the
// ledger service; a debit must never take it below zero.
type Wallet struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	UserID    uint                `gorm:"index;not null" json:"userId"`
	Type      string              `gorm:"not null" json:"type"`
	Balance   decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"balance"`
	Limit     decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"limit"`
	Unit      string              `gorm:"default:'INR'" json:"unit"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"-"`
}
