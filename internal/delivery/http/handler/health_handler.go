package handler

import (
	"context"

	"freelance-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db pinger, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := fiber.Map{"database": "up", "cache": "up"}
	healthy := true

	if h.db == nil || h.db.Ping(c.Context()) != nil {
		status["database"] = "down"
		healthy = false
	}
	// Cache is optional capacity; a down cache does not fail the check.
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		status["cache"] = "down"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
