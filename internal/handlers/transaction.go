package handlers

import (
	"errors"
	"strconv"

	"campuspay/internal/middleware"
	"campuspay/internal/services/ledger"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	ledgerService ledger.Service
}

func NewTransactionHandler(ledgerService ledger.Service) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// List returns the caller's transactions, newest first. ?limit=
// defaults to 50.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit := ledger.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	txns, err := h.ledgerService.ListTransactions(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return utils.InternalError(c, "failed to list transactions")
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}

type postTransactionRequest struct {
	WalletID    uint            `json:"walletId" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Merchant    string          `json:"merchant" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=debit credit"`
	Description string          `json:"description"`
}

// Create posts a debit or credit against one of the caller's wallets.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input postTransactionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	txn, err := h.ledgerService.Post(c.Context(), middleware.UserID(c), ledger.PostInput{
		WalletID:    input.WalletID,
		Amount:      input.Amount,
		Type:        input.Type,
		Merchant:    input.Merchant,
		Category:    input.Category,
		Description: input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return utils.BadRequest(c, "insufficient balance")
		case errors.Is(err, ledger.ErrWalletNotFound):
			return utils.NotFound(c, "wallet not found")
		case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidType):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "failed to post transaction")
		}
	}
	return utils.Success(c, fiber.Map{"transaction": txn})
}
