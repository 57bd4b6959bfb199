package models

import "time"

// Student status values.
const (
	StudentStatusDayScholar = "day_scholar"
	StudentStatusHosteler   = "hosteler"
)

// DefaultCreditScore is assigned to every user at signup.
const DefaultCreditScore = 500

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	Name          string    `gorm:"not null" json:"name"`
	College       string    `json:"college,omitempty"`
	Year          string    `json:"year,omitempty"`
	StudentStatus string    `json:"studentStatus,omitempty"`
	CreditScore   int       `gorm:"default:500" json:"creditScore"`
	Avatar        string    `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`
}
