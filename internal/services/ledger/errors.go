package ledger

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("type must be debit or credit")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrWalletNotFound is returned both when the wallet does not exist
	// and when it belongs to another user.
	ErrWalletNotFound = errors.New("wallet not found")
)
