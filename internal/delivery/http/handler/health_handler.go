package handler

import (
	"context"

	"upath/internal/delivery/http/dto"
	"upath/internal/delivery/http/middleware"
	"upath/internal/pkg/response"
	"upath/internal/repository"

	"github.com/gofiber/fiber/v3"
)

const (
	CacheStatusOK          = "ok"
	CacheStatusUnavailable = "unavailable"
	CacheStatusDisabled    = "disabled"
)

// CachePinger is the optional cache connectivity check reported by /health.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	repo    repository.HealthRepository
	cache   CachePinger
	service string
}

// NewHealthHandler builds the health endpoint. cache may be nil, in which
// case the cache is reported as disabled.
func NewHealthHandler(repo repository.HealthRepository, cache CachePinger, service string) *HealthHandler {
	if service == "" {
		service = "upath-backend"
	}
	return &HealthHandler{repo: repo, cache: cache, service: service}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	now, err := h.repo.DBTime(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Database unavailable", err)
	}
	return response.JSON(c, fiber.StatusOK, dto.HealthResponse{
		OK:      true,
		Service: h.service,
		DBTime:  now,
		Cache:   h.cacheStatus(c.Context()),
	})
}

// The cache is optional, so a failed ping degrades the report but not the
// status code.
func (h *HealthHandler) cacheStatus(ctx context.Context) string {
	if h.cache == nil {
		return CacheStatusDisabled
	}
	if err := h.cache.Ping(ctx); err != nil {
		return CacheStatusUnavailable
	}
	return CacheStatusOK
}
