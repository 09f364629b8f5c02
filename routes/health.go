package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sgo/db"
)

const healthTimeout = 2 * time.Second

// healthz reports whether the store is reachable. The driver error is only
// included when debug is set.
func healthz(database *gorm.DB, debug bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx, database); err != nil {
			body := fiber.Map{"status": "unavailable"}
			if debug {
				body["detailed_error"] = err.Error()
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(body)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func livez(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
