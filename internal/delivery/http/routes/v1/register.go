package v1

import (
	"freelance-hub/internal/delivery/http/handler"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Skills          usecase.SkillUsecase
	UserSkills      usecase.UserSkillUsecase
	Gigs            usecase.GigUsecase
	Recommendations usecase.RecommendationUsecase
	Chat            usecase.ChatUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	handler.NewSkillHandler(deps.Skills).RegisterRoutes(r)
	handler.NewGigHandler(deps.Gigs).RegisterRoutes(r)
	handler.NewChatHandler(deps.Chat).RegisterRoutes(r)

	users := r.Group("/users")
	handler.NewUserSkillHandler(deps.UserSkills).RegisterRoutes(users)
	handler.NewRecommendationHandler(deps.Recommendations).RegisterRoutes(users)
}
