package repositories

import (
	"fmt"

	"campuspay/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines chat log persistence operations.
// The log is append-only; messages are listed oldest first.
type ChatRepository interface {
	Create(msg *models.ChatMessage) error
	GetByUser(userID uint) ([]models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func (r *chatRepository) Create(msg *models.ChatMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

func (r *chatRepository) GetByUser(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp asc, id asc").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return msgs, nil
}
