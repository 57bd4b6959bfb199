package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription cycles and statuses.
const (
	CycleMonthly = "monthly"
	CycleYearly  = "yearly"

	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription is a recurring charge reminder. Cancellation is a status
// flip; rows are never deleted.
type Subscription struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"userId"`
	Name      string          `gorm:"not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Cycle     string          `gorm:"not null" json:"cycle"`
	NextDue   time.Time       `gorm:"not null" json:"nextDue"`
	Logo      string          `json:"logo,omitempty"`
	Status    string          `gorm:"default:'active'" json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"-"`
}
