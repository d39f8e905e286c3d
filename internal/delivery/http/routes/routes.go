package routes

import (
	"context"

	"freelance-hub/internal/delivery/http/handler"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries the wired usecases the HTTP surface exposes.
type Deps struct {
	DB    pinger
	Cache pinger

	Skills          usecase.SkillUsecase
	UserSkills      usecase.UserSkillUsecase
	Gigs            usecase.GigUsecase
	Recommendations usecase.RecommendationUsecase
	Chat            usecase.ChatUsecase
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
