package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/config"
)

// Live answers the plain-text liveness probe.
func (h *Handler) Live(c *fiber.Ctx) error {
	return c.SendString("Telegram Stars backend is running")
}

// Health reports service health, including the database when configured.
func (h *Handler) Health(c *fiber.Ctx) error {
	status := "healthy"
	checks := fiber.Map{}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), config.HealthCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "unhealthy"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now(),
		"checks":    checks,
	})
}
