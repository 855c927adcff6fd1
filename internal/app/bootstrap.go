package app

import (
	"fmt"
	"strings"

	"upath/internal/config"
	"upath/internal/delivery/http/middleware"
	"upath/internal/delivery/http/routes"
	"upath/internal/pkg/logger"
	"upath/internal/pkg/validate"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:         c.Config.App.AppName,
		StructValidator: validate.Default(),
	})

	registerGlobalMiddleware(f, c.Config, c.Log)
	routes.NewRegistry(routes.Dependencies{
		DB:      c.DB,
		Cache:   c.Cache,
		Hub:     c.Hub,
		Origins: c.Config.HTTP.FrontendOrigins,
		Service: c.Config.App.AppName,
		Log:     c.Log,
	}).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects every dependency and builds the HTTP app. The returned
// cleanup releases them and must run after the server has shut down.
func Bootstrap(cfg config.Config, log *logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, log *logger.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.CORS(cfg.HTTP.FrontendOrigins))
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
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
