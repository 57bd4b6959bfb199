package ledger

import (
	"context"
	"sync"
	"testing"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWallet(t *testing.T, store repositories.Store, userID uint, balance string) *models.Wallet {
	t.Helper()
	wallet := &models.Wallet{
		UserID:  userID,
		Type:    models.WalletTypeEATM,
		Balance: decimal.RequireFromString(balance),
		Unit:    models.UnitINR,
	}
	require.NoError(t, store.Wallets().Create(wallet))
	return wallet
}

func TestPostDebitAndCredit(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "5000")

	txn, err := svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.NewFromInt(1200),
		Type:     models.TransactionTypeDebit,
		Merchant: "Zomato",
		Category: "food",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeDebit, txn.Type)
	assert.Equal(t, "1200", txn.Amount.String())
	assert.NotEmpty(t, txn.Reference)

	updated, err := store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "3800", updated.Balance.String())

	_, err = svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.NewFromInt(200),
		Type:     models.TransactionTypeCredit,
		Merchant: "Refund",
		Category: "shopping",
	})
	require.NoError(t, err)

	updated, err = store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "4000", updated.Balance.String())

	txns, err := svc.ListTransactions(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	// Newest first.
	assert.Equal(t, models.TransactionTypeCredit, txns[0].Type)
}

func TestPostRejectsOverdraft(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "100")

	_, err := svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.RequireFromString("100.01"),
		Type:     models.TransactionTypeDebit,
		Merchant: "Metro",
		Category: "transport",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// No balance write and no transaction row.
	updated, err := store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", updated.Balance.String())

	txns, err := store.Transactions().GetByUser(1, 10)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestPostExactBalanceToZero(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "250.50")

	_, err := svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.RequireFromString("250.50"),
		Type:     models.TransactionTypeDebit,
		Merchant: "Bookstore",
		Category: "education",
	})
	require.NoError(t, err)

	updated, err := store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
}

func TestPostValidation(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "5000")

	_, err := svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.NewFromInt(-10),
		Type:     models.TransactionTypeDebit,
		Merchant: "x",
		Category: "food",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Post(context.Background(), 1, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.NewFromInt(10),
		Type:     "transfer",
		Merchant: "x",
		Category: "food",
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestOwnershipIsolation(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "5000")

	// User 2 posting against user 1's wallet reads as not found.
	_, err := svc.Post(context.Background(), 2, PostInput{
		WalletID: wallet.ID,
		Amount:   decimal.NewFromInt(10),
		Type:     models.TransactionTypeDebit,
		Merchant: "x",
		Category: "food",
	})
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = svc.GetWallet(context.Background(), 2, wallet.ID)
	assert.ErrorIs(t, err, ErrWalletNotFound)

	// Balance untouched.
	updated, err := store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "5000", updated.Balance.String())
}

func TestConcurrentDebitsSerialize(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewService(store)
	wallet := seedWallet(t, store, 1, "5000")

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Post(context.Background(), 1, PostInput{
				WalletID: wallet.ID,
				Amount:   decimal.NewFromInt(3000),
				Type:     models.TransactionTypeDebit,
				Merchant: "Amazon",
				Category: "shopping",
			})
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrInsufficientBalance):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one debit must win")
	assert.Equal(t, 1, rejected, "the loser must be rejected, not lost")

	updated, err := store.Wallets().GetByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "2000", updated.Balance.String())

	txns, err := store.Transactions().GetByUser(1, 10)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}
