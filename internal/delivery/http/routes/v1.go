package routes

import (
	v1 "freelance-hub/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	v1.Register(r, v1.Deps{
		Skills:          deps.Skills,
		UserSkills:      deps.UserSkills,
		Gigs:            deps.Gigs,
		Recommendations: deps.Recommendations,
		Chat:            deps.Chat,
	})
}
