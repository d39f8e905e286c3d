package handler

import (
	"freelance-hub/internal/pkg/response"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/:user_id/recommendations")
	grp.Get("/gigs", h.Gigs)
	grp.Get("/courses", h.Courses)
	grp.Get("/skill-gaps", h.SkillGaps)
}

func (h *RecommendationHandler) Gigs(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.RecommendGigs(c.Context(), userID, queryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) Courses(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.RecommendCourses(c.Context(), userID, queryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) SkillGaps(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.SkillGapCourses(c.Context(), userID, queryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
