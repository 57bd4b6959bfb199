package handlers

import (
	"campuspay/internal/middleware"
	"campuspay/internal/services/chat"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// List returns the caller's chat log, oldest first.
func (h *ChatHandler) List(c *fiber.Ctx) error {
	msgs, err := h.chatService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalError(c, "failed to list messages")
	}
	return utils.Success(c, fiber.Map{"messages": msgs})
}

// Send appends a message. A user message eventually gets a bot reply;
// the reply is not guaranteed to land before this call returns.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var input struct {
		Message string `json:"message" validate:"required"`
		Sender  string `json:"sender" validate:"required,oneof=user bot"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	msg, err := h.chatService.Send(c.Context(), middleware.UserID(c), input.Message, input.Sender)
	if err != nil {
		return utils.InternalError(c, "failed to send message")
	}
	return utils.Success(c, fiber.Map{"message": msg})
}
