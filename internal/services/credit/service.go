// Package credit covers the PayLater credit line and EMI conversion:
// utilization math against the paylater wallet and amortized
// installment plans.
package credit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"

	"github.com/shopspring/decimal"
)

// DefaultInterestRate is the annual percentage applied when a
// conversion request does not name one.
var DefaultInterestRate = decimal.RequireFromString("15.00")

// AccountView is the PayLater account together with utilization
// derived from the paylater wallet's live balance. Percentage is not
// clamped; an over-limit account reads above 100.
type AccountView struct {
	models.PaylaterAccount
	Available   decimal.Decimal `json:"available"`
	Utilized    decimal.Decimal `json:"utilized"`
	Utilization decimal.Decimal `json:"utilizationPercent"`
}

// ConvertInput describes an EMI conversion request.
type ConvertInput struct {
	TransactionID *uint
	TotalAmount   decimal.Decimal
	InterestRate  decimal.Decimal
	Tenure        int
}

type Service interface {
	GetAccount(ctx context.Context, userID uint) (*AccountView, error)
	ListPlans(ctx context.Context, userID uint) ([]models.EmiPlan, error)

	// Convert creates an EMI plan. It does not adjust the PayLater
	// account's used balance or mark the source transaction; see
	// DESIGN.md for the deliberate installment-settlement gap.
	Convert(ctx context.Context, userID uint, in ConvertInput) (*models.EmiPlan, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	return &service{store: store}
}

func (s *service) GetAccount(_ context.Context, userID uint) (*AccountView, error) {
	account, err := s.store.Paylater().GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaylaterNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get paylater account: %w", err)
	}

	wallet, err := s.store.Wallets().GetByUserAndType(userID, models.WalletTypePaylater)
	if err != nil {
		return nil, fmt.Errorf("failed to get paylater wallet: %w", err)
	}

	utilized := account.CreditLimit.Sub(wallet.Balance)
	percentage := decimal.Zero
	if account.CreditLimit.IsPositive() {
		percentage = utilized.Div(account.CreditLimit).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &AccountView{
		PaylaterAccount: *account,
		Available:       wallet.Balance,
		Utilized:        utilized,
		Utilization:     percentage,
	}, nil
}

func (s *service) ListPlans(_ context.Context, userID uint) ([]models.EmiPlan, error) {
	return s.store.EmiPlans().GetByUser(userID)
}

func (s *service) Convert(_ context.Context, userID uint, in ConvertInput) (*models.EmiPlan, error) {
	if !in.TotalAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.Tenure < 1 {
		return nil, ErrInvalidTenure
	}
	if in.InterestRate.IsNegative() {
		return nil, ErrInvalidRate
	}

	if in.TransactionID != nil {
		txn, err := s.store.Transactions().GetByID(*in.TransactionID)
		if err != nil || txn.UserID != userID {
			return nil, ErrTransactionNotFound
		}
	}

	monthlyEmi := MonthlyEMI(in.TotalAmount, in.InterestRate, in.Tenure)
	nextDue := NextDueDate(time.Now())

	plan := &models.EmiPlan{
		UserID:        userID,
		TransactionID: in.TransactionID,
		TotalAmount:   in.TotalAmount,
		InterestRate:  in.InterestRate,
		Tenure:        in.Tenure,
		MonthlyEmi:    monthlyEmi,
		NextDueDate:   &nextDue,
		Status:        models.EmiStatusActive,
	}
	if err := s.store.EmiPlans().Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create emi plan: %w", err)
	}
	return plan, nil
}
