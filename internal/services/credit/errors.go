package credit

import "errors"

var (
	ErrAccountNotFound     = errors.New("paylater account not found")
	ErrInvalidAmount       = errors.New("total amount must be positive")
	ErrInvalidTenure       = errors.New("tenure must be at least one month")
	ErrInvalidRate         = errors.New("interest rate must not be negative")
	ErrTransactionNotFound = errors.New("source transaction not found")
)
