package repositories

import (
	"fmt"

	"campuspay/internal/models"

	"gorm.io/gorm"
)

// CardRepository defines virtual card persistence operations.
type CardRepository interface {
	Create(card *models.VirtualCard) error
	GetByUser(userID uint) (*models.VirtualCard, error)
	UpdateStatus(id uint, status string) error
}

type cardRepository struct {
	db *gorm.DB
}

func (r *cardRepository) Create(card *models.VirtualCard) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByUser(userID uint) (*models.VirtualCard, error) {
	var card models.VirtualCard
	if err := r.db.Where("user_id = ?", userID).First(&card).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.VirtualCard{}).Where("id = ?", id).
		Update("status", status).Error
}
