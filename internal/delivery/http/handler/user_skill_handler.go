package handler

import (
	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/pkg/response"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type saveUserSkillRequest struct {
	SkillID         uuid.UUID `json:"skill_id"`
	Proficiency     string    `json:"proficiency"`
	YearsExperience int       `json:"years_experience"`
}

type replaceUserSkillsRequest struct {
	Skills []saveUserSkillRequest `json:"skills"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:user_id/skills", h.List)
	r.Put("/:user_id/skills", h.Replace)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *UserSkillHandler) Replace(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req replaceUserSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items := make([]usecase.SaveUserSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		items = append(items, usecase.SaveUserSkillInput{
			SkillID:         s.SkillID,
			Proficiency:     s.Proficiency,
			YearsExperience: s.YearsExperience,
		})
	}

	saved, err := h.uc.ReplaceUserSkills(c.Context(), userID, items)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "skills saved", saved)
}

func parseUserID(c fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("user_id")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}
	return id, nil
}
