package app

import (
	"fmt"
	"strings"

	"freelance-hub/internal/config"
	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/delivery/http/routes"
	"freelance-hub/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(routes.Deps{
		DB:              c.DB,
		Cache:           c.Cache,
		Skills:          c.Skills,
		UserSkills:      c.UserSkills,
		Gigs:            c.Gigs,
		Recommendations: c.Recommendations,
		Chat:            c.Chat,
	}).Register(app)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	wsHandler := ws.NewHandler(c.Hub, c.Chat, c.Logger)
	app.Get("/ws/chat", wsHandler.HandleChatWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
