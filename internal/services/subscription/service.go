// Package subscription manages recurring charge reminders.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("subscription not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// CreateInput describes a new subscription.
type CreateInput struct {
	Name    string
	Amount  decimal.Decimal
	Cycle   string
	NextDue time.Time
	Logo    string
}

type Service interface {
	// List returns the user's active subscriptions, soonest due first.
	List(ctx context.Context, userID uint) ([]models.Subscription, error)
	Create(ctx context.Context, userID uint, in CreateInput) (*models.Subscription, error)

	// Cancel flips the status to cancelled; rows are never deleted.
	Cancel(ctx context.Context, userID, id uint) error
}

type service struct {
	subs repositories.SubscriptionRepository
}

func NewService(subs repositories.SubscriptionRepository) Service {
	return &service{subs: subs}
}

func (s *service) List(_ context.Context, userID uint) ([]models.Subscription, error) {
	return s.subs.GetActiveByUser(userID)
}

func (s *service) Create(_ context.Context, userID uint, in CreateInput) (*models.Subscription, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	sub := &models.Subscription{
		UserID:  userID,
		Name:    in.Name,
		Amount:  in.Amount,
		Cycle:   in.Cycle,
		NextDue: in.NextDue,
		Logo:    in.Logo,
		Status:  models.SubscriptionStatusActive,
	}
	if err := s.subs.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

func (s *service) Cancel(_ context.Context, userID, id uint) error {
	sub, err := s.subs.GetByID(id)
	if err != nil || sub.UserID != userID {
		return ErrNotFound
	}
	return s.subs.UpdateStatus(id, models.SubscriptionStatusCancelled)
}
