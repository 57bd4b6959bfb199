package repositories

import (
	"fmt"

	"campuspay/internal/models"

	"gorm.io/gorm"
)

// EmiPlanRepository defines EMI plan persistence operations.
type EmiPlanRepository interface {
	Create(plan *models.EmiPlan) error
	GetByID(id uint) (*models.EmiPlan, error)
	GetByUser(userID uint) ([]models.EmiPlan, error)
}

type emiPlanRepository struct {
	db *gorm.DB
}

func (r *emiPlanRepository) Create(plan *models.EmiPlan) error {
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create emi plan: %w", err)
	}
	return nil
}

func (r *emiPlanRepository) GetByID(id uint) (*models.EmiPlan, error) {
	var plan models.EmiPlan
	if err := r.db.First(&plan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEmiPlanNotFound
		}
		return nil, fmt.Errorf("failed to get emi plan: %w", err)
	}
	return &plan, nil
}

func (r *emiPlanRepository) GetByUser(userID uint) ([]models.EmiPlan, error) {
	var plans []models.EmiPlan
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list emi plans: %w", err)
	}
	return plans, nil
}
