package app

import (
	"fmt"
	"log"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 10 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.ServerConfig, logger *log.Logger) (*App, func() error, error) {
	if strings.TrimSpace(cfg.JWT.AccessSecret) == "" {
		return nil, nil, fmt.Errorf("empty JWT access secret")
	}
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

// registerGlobalMiddleware mounts the access log outside the error
// middleware so logged statuses are the rendered ones.
func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger, "/health", "/media/").Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(routes.Deps{
		AppName:     c.Config.App.AppName,
		Tokens:      c.Tokens,
		Auth:        c.Auth,
		Marketplace: c.Marketplace,
		Uploads:     c.Uploads,
	}).Register(app)
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
