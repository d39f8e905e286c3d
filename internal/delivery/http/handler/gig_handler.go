package handler

import (
	"strconv"

	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/pkg/response"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GigHandler struct {
	uc usecase.GigUsecase
}

type createGigRequest struct {
	UserID      uuid.UUID   `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PriceMin    float64     `json:"price_min"`
	PriceMax    float64     `json:"price_max"`
	Duration    string      `json:"duration"`
	SkillIDs    []uuid.UUID `json:"skill_ids"`
}

func NewGigHandler(uc usecase.GigUsecase) *GigHandler {
	return &GigHandler{uc: uc}
}

func (h *GigHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/gigs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *GigHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	items, err := h.uc.ListGigs(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *GigHandler) Create(c fiber.Ctx) error {
	var req createGigRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateGig(c.Context(), usecase.CreateGigInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Duration:    req.Duration,
		SkillIDs:    req.SkillIDs,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "gig created", created)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
