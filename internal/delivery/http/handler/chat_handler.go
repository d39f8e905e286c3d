package handler

import (
	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/pkg/response"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

type chatRequest struct {
	UserID  *uuid.UUID `json:"user_id"`
	Message string     `json:"message"`
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.Chat)
}

func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reply, err := h.uc.Chat(c.Context(), req.UserID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reply)
}
