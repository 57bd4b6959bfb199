package handlers

import (
	"errors"
	"strconv"
	"time"

	"campuspay/internal/middleware"
	"campuspay/internal/services/subscription"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SubscriptionHandler struct {
	subService subscription.Service
}

func NewSubscriptionHandler(subService subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// List returns active subscriptions, soonest due first.
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	subs, err := h.subService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalError(c, "failed to list subscriptions")
	}
	return utils.Success(c, fiber.Map{"subscriptions": subs})
}

type createSubscriptionRequest struct {
	Name    string          `json:"name" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Cycle   string          `json:"cycle" validate:"required,oneof=monthly yearly"`
	NextDue time.Time       `json:"nextDue" validate:"required"`
	Logo    string          `json:"logo"`
}

// Create registers a new recurring subscription.
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var input createSubscriptionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	sub, err := h.subService.Create(c.Context(), middleware.UserID(c), subscription.CreateInput{
		Name:    input.Name,
		Amount:  input.Amount,
		Cycle:   input.Cycle,
		NextDue: input.NextDue,
		Logo:    input.Logo,
	})
	if err != nil {
		if errors.Is(err, subscription.ErrInvalidAmount) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "failed to create subscription")
	}
	return utils.Success(c, fiber.Map{"subscription": sub})
}

// Cancel flips the subscription to cancelled.
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.NotFound(c, "subscription not found")
	}

	if err := h.subService.Cancel(c.Context(), middleware.UserID(c), uint(id)); err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			return utils.NotFound(c, "subscription not found")
		}
		return utils.InternalError(c, "failed to cancel subscription")
	}
	return utils.Success(c, fiber.Map{"message": "subscription cancelled"})
}
