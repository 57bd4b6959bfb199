package card

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCard(t *testing.T, store repositories.Store, userID uint) *models.VirtualCard {
	t.Helper()
	c := &models.VirtualCard{
		UserID:       userID,
		WalletID:     7,
		CardNumber:   "4111222233334444",
		ExpiryDate:   "12/28",
		CVVHash:      "$2a$10$abcdefghijklmnopqrstuv",
		Status:       models.CardStatusActive,
		DailyLimit:   decimal.NewFromInt(10000),
		MonthlyLimit: decimal.NewFromInt(50000),
	}
	require.NoError(t, store.Cards().Create(c))
	return c
}

func TestGetMasksNumberAndOmitsCVV(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Cards())
	seedCard(t, store, 1)

	masked, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "•••• •••• •••• 4444", masked.CardNumber)
	assert.Equal(t, "12/28", masked.ExpiryDate)

	// Nothing resembling the CVV hash or the full number may serialize.
	raw, err := json.Marshal(masked)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "4111222233334444"))
	assert.False(t, strings.Contains(string(raw), "$2a$"))
}

func TestGetNotFound(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Cards())

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestUpdateStatus(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Cards())
	seeded := seedCard(t, store, 1)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, models.CardStatusFrozen))

	stored, err := store.Cards().GetByUser(1)
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusFrozen, stored.Status)
	assert.Equal(t, seeded.ID, stored.ID)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Cards())
	seedCard(t, store, 1)

	err := svc.UpdateStatus(context.Background(), 1, "melted")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusForMissingCard(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Cards())

	err := svc.UpdateStatus(context.Background(), 1, models.CardStatusBlocked)
	assert.ErrorIs(t, err, ErrCardNotFound)
}
