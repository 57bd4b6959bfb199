package handlers

import (
	"errors"

	"campuspay/internal/middleware"
	"campuspay/internal/services/card"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// Get returns the caller's virtual card, number masked, CVV omitted.
func (h *CardHandler) Get(c *fiber.Ctx) error {
	masked, err := h.cardService.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return utils.NotFound(c, "card not found")
		}
		return utils.InternalError(c, "failed to get card")
	}
	return utils.Success(c, fiber.Map{"card": masked})
}

// UpdateStatus freezes, blocks or reactivates the card.
func (h *CardHandler) UpdateStatus(c *fiber.Ctx) error {
	var input struct {
		Status string `json:"status" validate:"required,oneof=active frozen blocked"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	err := h.cardService.UpdateStatus(c.Context(), middleware.UserID(c), input.Status)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return utils.NotFound(c, "card not found")
		}
		if errors.Is(err, card.ErrInvalidStatus) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "failed to update card status")
	}
	return utils.Success(c, fiber.Map{"message": "card status updated"})
}
