// Package card exposes the virtual card. The number is masked to its
// last four digits before leaving the service and the CVV hash is
// never serialized.
package card

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
	ErrCardNotFound  = errors.New("card not found")
	ErrInvalidStatus = errors.New("status must be active, frozen or blocked")
)

// MaskedCard is the client-facing card view.
type MaskedCard struct {
	ID           uint            `json:"id"`
	WalletID     uint            `json:"walletId"`
	CardNumber   string          `json:"cardNumber"`
	ExpiryDate   string          `json:"expiryDate"`
	Status       string          `json:"status"`
	DailyLimit   decimal.Decimal `json:"dailyLimit"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type Service interface {
	Get(ctx context.Context, userID uint) (*MaskedCard, error)
	UpdateStatus(ctx context.Context, userID uint, status string) error
}

type service struct {
	cards repositories.CardRepository
}

func NewService(cards repositories.CardRepository) Service {
	return &service{cards: cards}
}

func (s *service) Get(_ context.Context, userID uint) (*MaskedCard, error) {
	card, err := s.cards.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return mask(card), nil
}

func (s *service) UpdateStatus(_ context.Context, userID uint, status string) error {
	switch status {
	case models.CardStatusActive, models.CardStatusFrozen, models.CardStatusBlocked:
	default:
		return ErrInvalidStatus
	}

	card, err := s.cards.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}
	return s.cards.UpdateStatus(card.ID, status)
}

func mask(card *models.VirtualCard) *MaskedCard {
	number := card.CardNumber
	if len(number) > 4 {
		number = number[len(number)-4:]
	}
	return &MaskedCard{
		ID:           card.ID,
		WalletID:     card.WalletID,
		CardNumber:   "•••• •••• •••• " + number,
		ExpiryDate:   card.ExpiryDate,
		Status:       card.Status,
		DailyLimit:   card.DailyLimit,
		MonthlyLimit: card.MonthlyLimit,
		CreatedAt:    card.CreatedAt,
	}
}
