package repositories

import (
	"fmt"

	"campuspay/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaylaterRepository defines PayLater account persistence operations.
type PaylaterRepository interface {
	Create(account *models.PaylaterAccount) error
	GetByUser(userID uint) (*models.PaylaterAccount, error)
	UpdateUsed(id uint, used decimal.Decimal) error
}

type paylaterRepository struct {
	db *gorm.DB
}

func (r *paylaterRepository) Create(account *models.PaylaterAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create paylater account: %w", err)
	}
	return nil
}

func (r *paylaterRepository) GetByUser(userID uint) (*models.PaylaterAccount, error) {
	var account models.PaylaterAccount
	if err := r.db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPaylaterNotFound
		}
		return nil, fmt.Errorf("failed to get paylater account: %w", err)
	}
	return &account, nil
}

func (r *paylaterRepository) UpdateUsed(id uint, used decimal.Decimal) error {
	return r.db.Model(&models.PaylaterAccount{}).Where("id = ?", id).
		Update("used", used).Error
}
