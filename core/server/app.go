package server

import (
	"errors"
	"time"

	"unit-converter/core/logger"
	"unit-converter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the Fiber application with the global middleware chain:
// recover, ray id, request logging, CORS and the optional rate limiter.
func NewApp(cfg Config, logg *zap.Logger) *fiber.App {
	bodyLimit := cfg.BodyLimitKB * 1024
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		BodyLimit:             bodyLimit,
		ErrorHandler:          ErrorHandler(logg),
	})

	app.Use(recover.New())
	// RayID must come before logging so every line carries it
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests, slow down",
				})
			},
		}))
	}

	return app
}

// ErrorHandler renders every unhandled error as {"error": message}.
// Fiber errors keep their status; anything else is an internal fault.
func ErrorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			logger.WithRayID(logg, c).Error("Unhandled error", zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}
