package handler

import (
	"errors"

	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/infrastructure/embedding"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinels into transport errors the
// error middleware renders.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrGigNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Gig not found", nil, err)
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, embedding.ErrModelUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Embedding model unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
