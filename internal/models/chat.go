package models

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one entry in a user's append-only assistant log.
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Message   string    `gorm:"not null" json:"message"`
	Sender    string    `gorm:"not null" json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
