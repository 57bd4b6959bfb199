package repositories

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrCardNotFound         = errors.New("card not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrPaylaterNotFound     = errors.New("paylater account not found")
	ErrEmiPlanNotFound      = errors.New("emi plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
