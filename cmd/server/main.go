// Package main is the entry point for the application. It wires the
// database, the session store and the HTTP server.
package main

import (
	"log"
	"time"

	"campuspay/internal/config"
	"campuspay/internal/repositories"
	"campuspay/internal/routes"
	"campuspay/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	var store repositories.Store
	if config.GetEnv("STORAGE", "postgres") == "memory" {
		// Local development without PostgreSQL.
		store = repositories.NewMemoryStore()
		log.Println("using in-memory storage")
	} else {
		db, err := repositories.Connect()
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		store = repositories.NewStore(db)
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("failed to close database connection: %v", err)
				}
			}
		}()
	}

	var sessions session.Store
	if config.GetEnv("SESSIONS", "redis") == "memory" {
		sessions = session.NewMemoryStore(session.DefaultTTL)
		log.Println("using in-memory sessions")
	} else {
		redisClient := session.NewRedisClient(session.RedisConfigFromEnv())
		sessions = session.NewRedisStore(redisClient, session.DefaultTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Throttle credential endpoints per client IP.
	for _, path := range []string{"/api/auth/signup", "/api/auth/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "too many requests, please try again later",
				})
			},
		}))
	}

	routes.SetupRoutes(app, store, sessions)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
