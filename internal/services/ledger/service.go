// Package ledger posts debits and credits against wallets. A posting
// adjusts the wallet balance and records the transaction row in one
// database transaction, with the wallet row locked for the duration so
// concurrent postings against the same wallet serialize instead of
// both reading the same stale balance.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultHistoryLimit caps transaction listings when the caller does
// not ask for a specific limit.
const DefaultHistoryLimit = 50

// PostInput describes one balance movement. Amount is an unsigned
// magnitude; Type carries the direction.
type PostInput struct {
	WalletID    uint
	Amount      decimal.Decimal
	Type        string
	Merchant    string
	Category    string
	Description string
}

type Service interface {
	// Post applies the movement to the wallet owned by userID. A debit
	// that would take the balance below zero is rejected with
	// ErrInsufficientBalance and writes nothing.
	Post(ctx context.Context, userID uint, in PostInput) (*models.Transaction, error)

	ListTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error)
	ListWallets(ctx context.Context, userID uint) ([]models.Wallet, error)
	GetWallet(ctx context.Context, userID, walletID uint) (*models.Wallet, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	return &service{store: store}
}

func (s *service) Post(ctx context.Context, userID uint, in PostInput) (*models.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.Type != models.TransactionTypeDebit && in.Type != models.TransactionTypeCredit {
		return nil, ErrInvalidType
	}

	var txn *models.Transaction
	err := s.store.InTransaction(func(tx repositories.Store) error {
		wallet, err := tx.Wallets().GetByIDForUpdate(in.WalletID)
		if err != nil {
			return err
		}
		if wallet.UserID != userID {
			// Not-owned looks identical to absent.
			return repositories.ErrWalletNotFound
		}

		newBalance := wallet.Balance.Add(in.Amount)
		if in.Type == models.TransactionTypeDebit {
			newBalance = wallet.Balance.Sub(in.Amount)
		}
		if newBalance.IsNegative() {
			return ErrInsufficientBalance
		}

		if err := tx.Wallets().UpdateBalance(wallet.ID, newBalance); err != nil {
			return err
		}

		txn = &models.Transaction{
			UserID:      userID,
			WalletID:    wallet.ID,
			Amount:      in.Amount,
			Merchant:    in.Merchant,
			Category:    in.Category,
			Type:        in.Type,
			Description: in.Description,
			Reference:   uuid.NewString(),
			Date:        time.Now(),
		}
		return tx.Transactions().Create(txn)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		if errors.Is(err, ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		return nil, fmt.Errorf("failed to post transaction: %w", err)
	}
	return txn, nil
}

func (s *service) ListTransactions(_ context.Context, userID uint, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.Transactions().GetByUser(userID, limit)
}

func (s *service) ListWallets(_ context.Context, userID uint) ([]models.Wallet, error) {
	return s.store.Wallets().GetByUser(userID)
}

func (s *service) GetWallet(_ context.Context, userID, walletID uint) (*models.Wallet, error) {
	wallet, err := s.store.Wallets().GetByID(walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet.UserID != userID {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}
