package handlers

import (
	"errors"
	"strconv"

	"campuspay/internal/middleware"
	"campuspay/internal/services/ledger"
	"campuspay/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	ledgerService ledger.Service
}

func NewWalletHandler(ledgerService ledger.Service) *WalletHandler {
	return &WalletHandler{ledgerService: ledgerService}
}

// List returns all wallets owned by the caller.
func (h *WalletHandler) List(c *fiber.Ctx) error {
	wallets, err := h.ledgerService.ListWallets(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalError(c, "failed to list wallets")
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

// Get returns one wallet; absent and not-owned both read as 404.
func (h *WalletHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.NotFound(c, "wallet not found")
	}

	wallet, err := h.ledgerService.GetWallet(c.Context(), middleware.UserID(c), uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrWalletNotFound) {
			return utils.NotFound(c, "wallet not found")
		}
		return utils.InternalError(c, "failed to get wallet")
	}
	return utils.Success(c, fiber.Map{"wallet": wallet})
}
