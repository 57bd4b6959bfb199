// Package auth implements signup, login and session management.
// Signup provisions the user's full account bundle (four wallets, the
// virtual card and the PayLater account) in one database transaction.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"campuspay/internal/models"
	"campuspay/internal/repositories"
	"campuspay/internal/session"
	"campuspay/internal/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Provisioning defaults for new accounts.
var (
	defaultEATMBalance   = decimal.NewFromInt(5000)
	defaultCreditLimit   = decimal.NewFromInt(5000)
	defaultDailyLimit    = decimal.NewFromInt(10000)
	defaultMonthlyLimit  = decimal.NewFromInt(50000)
	defaultCardExpiry    = "12/28"
	paylaterDueDayOfNext = 5
)

const bcryptCost = 10

type SignupInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=4"`
	College       string `json:"college"`
	Year          string `json:"year"`
	StudentStatus string `json:"studentStatus" validate:"omitempty,oneof=day_scholar hosteler"`
}

type Service interface {
	// Signup registers the user, provisions the account bundle and
	// returns the user with a fresh session token.
	Signup(ctx context.Context, in SignupInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uint) (*models.User, error)
}

type service struct {
	store    repositories.Store
	sessions session.Store
}

func NewService(store repositories.Store, sessions session.Store) Service {
	return &service{store: store, sessions: sessions}
}

func (s *service) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	_, err := s.store.Users().GetByEmail(in.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         in.Email,
		PasswordHash:  string(hash),
		Name:          in.Name,
		College:       in.College,
		Year:          in.Year,
		StudentStatus: in.StudentStatus,
		CreditScore:   models.DefaultCreditScore,
	}

	err = s.store.InTransaction(func(tx repositories.Store) error {
		if err := tx.Users().Create(user); err != nil {
			return err
		}
		return s.provisionAccounts(tx, user.ID)
	})
	if err != nil {
		return nil, "", fmt.Errorf("signup failed: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("user %d signed up", user.ID)
	return user, token, nil
}

// provisionAccounts creates the fixed wallet bundle plus the virtual
// card and PayLater account inside the signup transaction.
func (s *service) provisionAccounts(tx repositories.Store, userID uint) error {
	wallets := []models.Wallet{
		{UserID: userID, Type: models.WalletTypeCash, Balance: decimal.Zero, Unit: models.UnitINR},
		{UserID: userID, Type: models.WalletTypeEATM, Balance: defaultEATMBalance, Unit: models.UnitINR},
		{UserID: userID, Type: models.WalletTypePaylater, Balance: defaultCreditLimit,
			Limit: decimal.NewNullDecimal(defaultCreditLimit), Unit: models.UnitINR},
		{UserID: userID, Type: models.WalletTypeRewards, Balance: decimal.Zero, Unit: models.UnitPoints},
	}

	for i := range wallets {
		wallet := &wallets[i]
		if err := tx.Wallets().Create(wallet); err != nil {
			return err
		}

		switch wallet.Type {
		case models.WalletTypeEATM:
			if err := s.provisionCard(tx, userID, wallet.ID); err != nil {
				return err
			}
		case models.WalletTypePaylater:
			due := nextPaylaterDueDate(time.Now())
			account := &models.PaylaterAccount{
				UserID:      userID,
				WalletID:    wallet.ID,
				CreditLimit: defaultCreditLimit,
				Used:        decimal.Zero,
				DueDate:     &due,
				Status:      models.PaylaterStatusActive,
			}
			if err := tx.Paylater().Create(account); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *service) provisionCard(tx repositories.Store, userID, walletID uint) error {
	number, err := utils.GenerateCardNumber()
	if err != nil {
		return fmt.Errorf("failed to generate card number: %w", err)
	}
	cvv, err := utils.GenerateCVV()
	if err != nil {
		return fmt.Errorf("failed to generate cvv: %w", err)
	}
	cvvHash, err := bcrypt.GenerateFromPassword([]byte(cvv), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash cvv: %w", err)
	}

	card := &models.VirtualCard{
		UserID:       userID,
		WalletID:     walletID,
		CardNumber:   number,
		ExpiryDate:   defaultCardExpiry,
		CVVHash:      string(cvvHash),
		Status:       models.CardStatusActive,
		DailyLimit:   defaultDailyLimit,
		MonthlyLimit: defaultMonthlyLimit,
	}
	return tx.Cards().Create(card)
}

// nextPaylaterDueDate is the 5th of the following month.
func nextPaylaterDueDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, paylaterDueDayOfNext, 0, 0, 0, 0, now.Location())
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.Users().GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return user, token, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *service) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.store.Users().GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
