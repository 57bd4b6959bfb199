package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EMI plan status values.
const (
	EmiStatusActive    = "active"
	EmiStatusCompleted = "completed"
	EmiStatusDefaulted = "defaulted"
)

// EmiPlan is an amortized installment plan, optionally converted from an
// existing transaction. MonthlyEmi is computed once at creation; the
// schedule is advanced by a future installment-settlement collaborator.
type EmiPlan struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	UserID           uint            `gorm:"index;not null" json:"userId"`
	TransactionID    *uint           `json:"transactionId,omitempty"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:15.00" json:"interestRate"`
	Tenure           int             `gorm:"not null" json:"tenure"`
	MonthlyEmi       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthlyEmi"`
	PaidInstallments int             `gorm:"not null;default:0" json:"paidInstallments"`
	NextDueDate      *time.Time      `json:"nextDueDate,omitempty"`
	Status           string          `gorm:"default:'active'" json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"-"`
}
