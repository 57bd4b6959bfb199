// Package routes wires repositories, services and handlers onto the
// Fiber app. Everything under /api except signup and login sits behind
// the session middleware.
package routes

import (
	"campuspay/internal/handlers"
	"campuspay/internal/middleware"
	"campuspay/internal/repositories"
	"campuspay/internal/services/auth"
	"campuspay/internal/services/card"
	"campuspay/internal/services/chat"
	"campuspay/internal/services/credit"
	"campuspay/internal/services/ledger"
	"campuspay/internal/services/subscription"
	"campuspay/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, store repositories.Store, sessions session.Store) {
	authService := auth.NewService(store, sessions)
	ledgerService := ledger.NewService(store)
	creditService := credit.NewService(store)
	cardService := card.NewService(store.Cards())
	subService := subscription.NewService(store.Subscriptions())
	chatService := chat.NewService(store.Chat(), chat.RandomCannedResponse{}, chat.DefaultBotReplyDelay)

	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(ledgerService)
	txHandler := handlers.NewTransactionHandler(ledgerService)
	cardHandler := handlers.NewCardHandler(cardService)
	paylaterHandler := handlers.NewPaylaterHandler(creditService)
	subHandler := handlers.NewSubscriptionHandler(subService)
	chatHandler := handlers.NewChatHandler(chatService)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to CampusPay API",
			"version": "1.0.0",
		})
	})

	sessionMiddleware := middleware.NewSessionMiddleware(sessions)
	protected := api.Use(sessionMiddleware.Handler)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	protected.Get("/wallets", walletHandler.List)
	protected.Get("/wallets/:id", walletHandler.Get)

	protected.Get("/card", cardHandler.Get)
	protected.Patch("/card/status", cardHandler.UpdateStatus)

	protected.Get("/transactions", txHandler.List)
	protected.Post("/transactions", txHandler.Create)

	protected.Get("/paylater", paylaterHandler.GetAccount)
	protected.Get("/emi", paylaterHandler.ListPlans)
	protected.Post("/emi/convert", paylaterHandler.Convert)

	protected.Get("/subscriptions", subHandler.List)
	protected.Post("/subscriptions", subHandler.Create)
	protected.Patch("/subscriptions/:id/cancel", subHandler.Cancel)

	protected.Get("/chat/messages", chatHandler.List)
	protected.Post("/chat/messages", chatHandler.Send)
}
