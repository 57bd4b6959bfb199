package subscription

import (
	"context"
	"testing"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListOrdering(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Subscriptions())

	now := time.Now()
	later, err := svc.Create(context.Background(), 1, CreateInput{
		Name:    "Prime",
		Amount:  decimal.RequireFromString("179"),
		Cycle:   models.CycleYearly,
		NextDue: now.AddDate(0, 2, 0),
	})
	require.NoError(t, err)

	sooner, err := svc.Create(context.Background(), 1, CreateInput{
		Name:    "Spotify",
		Amount:  decimal.RequireFromString("59"),
		Cycle:   models.CycleMonthly,
		NextDue: now.AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	subs, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, sooner.ID, subs[0].ID)
	assert.Equal(t, later.ID, subs[1].ID)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Subscriptions())

	_, err := svc.Create(context.Background(), 1, CreateInput{
		Name:    "Free tier",
		Amount:  decimal.Zero,
		Cycle:   models.CycleMonthly,
		NextDue: time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCancelFlipsStatusWithoutDeleting(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Subscriptions())

	sub, err := svc.Create(context.Background(), 1, CreateInput{
		Name:    "Netflix",
		Amount:  decimal.RequireFromString("199"),
		Cycle:   models.CycleMonthly,
		NextDue: time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), 1, sub.ID))

	// Row survives with flipped status.
	stored, err := store.Subscriptions().GetByID(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusCancelled, stored.Status)

	// Cancelled subscriptions drop out of the active listing.
	subs, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestCancelEnforcesOwnership(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store.Subscriptions())

	sub, err := svc.Create(context.Background(), 1, CreateInput{
		Name:    "Hotstar",
		Amount:  decimal.RequireFromString("299"),
		Cycle:   models.CycleMonthly,
		NextDue: time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), 2, sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := store.Subscriptions().GetByID(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, stored.Status)
}
