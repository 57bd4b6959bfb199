package handlers

import (
	"errors"

	"campuspay/internal/middleware"
	"campuspay/internal/services/credit"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PaylaterHandler struct {
	creditService credit.Service
}

func NewPaylaterHandler(creditService credit.Service) *PaylaterHandler {
	return &PaylaterHandler{creditService: creditService}
}

// GetAccount returns the PayLater account with live utilization.
func (h *PaylaterHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.creditService.GetAccount(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, credit.ErrAccountNotFound) {
			return utils.NotFound(c, "paylater account not found")
		}
		return utils.InternalError(c, "failed to get paylater account")
	}
	return utils.Success(c, fiber.Map{"account": account})
}

// ListPlans returns the caller's EMI plans.
func (h *PaylaterHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.creditService.ListPlans(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalError(c, "failed to list emi plans")
	}
	return utils.Success(c, fiber.Map{"plans": plans})
}

type convertRequest struct {
	TransactionID *uint            `json:"transactionId"`
	TotalAmount   decimal.Decimal  `json:"totalAmount" validate:"required"`
	InterestRate  *decimal.Decimal `json:"interestRate"`
	Tenure        int              `json:"tenure" validate:"required,min=1"`
}

// Convert creates an EMI plan from an amount or an existing
// transaction. The interest rate defaults to 15% annual.
func (h *PaylaterHandler) Convert(c *fiber.Ctx) error {
	var input convertRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	rate := credit.DefaultInterestRate
	if input.InterestRate != nil {
		rate = *input.InterestRate
	}

	plan, err := h.creditService.Convert(c.Context(), middleware.UserID(c), credit.ConvertInput{
		TransactionID: input.TransactionID,
		TotalAmount:   input.TotalAmount,
		InterestRate:  rate,
		Tenure:        input.Tenure,
	})
	if err != nil {
		switch {
		case errors.Is(err, credit.ErrInvalidAmount),
			errors.Is(err, credit.ErrInvalidTenure),
			errors.Is(err, credit.ErrInvalidRate),
			errors.Is(err, credit.ErrTransactionNotFound):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "failed to create emi plan")
		}
	}
	return utils.Success(c, fiber.Map{"plan": plan})
}
