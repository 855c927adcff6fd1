package routes

import (
	"upath/internal/database"
	"upath/internal/delivery/http/handler"
	"upath/internal/delivery/http/middleware"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
	"upath/internal/usecase"
	"upath/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Dependencies struct {
	DB      database.DB
	Cache   usecase.JSONCache
	Hub     *ws.Hub
	Origins []string
	Service string
	Log     *logger.Logger
}

// Registry owns the HTTP handlers. Everything lives under /api except the
// websocket endpoint.
type Registry struct {
	api []interface{ RegisterRoutes(fiber.Router) }
	ws  *ws.Handler
}

func NewRegistry(d Dependencies) *Registry {
	users := repository.NewPostgresUserRepository(d.DB)
	goals := repository.NewPostgresGoalRepository(d.DB)

	var notifier usecase.AvailabilityNotifier
	if d.Hub != nil {
		notifier = d.Hub
	}

	booking := usecase.NewBookingUsecase(repository.NewPostgresMentorRepository(d.DB), notifier, d.Log)
	progress := usecase.NewProgressUsecase(users, goals, repository.NewPostgresProgressRepository(d.DB), d.Log)
	catalog := usecase.NewCatalogUsecase(goals, users, d.Cache, d.Log)
	prefs := usecase.NewPreferencesUsecase(repository.NewPostgresPreferencesRepository(d.DB), d.Log)
	resources := usecase.NewResourceUsecase(
		repository.NewPostgresResourceRepository(d.DB),
		repository.NewPostgresBookmarkRepository(d.DB),
		d.Cache,
		d.Log,
	)

	return &Registry{
		api: []interface{ RegisterRoutes(fiber.Router) }{
			handler.NewHealthHandler(repository.NewPostgresHealthRepository(d.DB), cachePinger(d.Cache), d.Service),
			handler.NewCatalogHandler(catalog),
			handler.NewProgressHandler(progress),
			handler.NewMentorHandler(booking),
			handler.NewPreferencesHandler(prefs),
			handler.NewResourceHandler(resources),
		},
		ws: ws.NewHandler(d.Hub, d.Origins, d.Log),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api")
	for _, h := range r.api {
		h.RegisterRoutes(api)
	}
	r.ws.RegisterRoutes(app)

	app.Use(middleware.NotFound)
}

func cachePinger(c usecase.JSONCache) handler.CachePinger {
	if p, ok := c.(handler.CachePinger); ok {
		return p
	}
	return nil
}
