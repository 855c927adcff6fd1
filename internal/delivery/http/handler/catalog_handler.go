package handler

import (
	"upath/internal/delivery/http/dto"
	"upath/internal/pkg/response"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler serves the read-only goal and user listings.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/goals", h.ListGoals)
	r.Get("/users", h.ListUsers)
	r.Get("/users/:id", h.GetUser)
}

func (h *CatalogHandler) ListGoals(c fiber.Ctx) error {
	items, err := h.uc.ListGoals(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewGoalResponse))
}

func (h *CatalogHandler) ListUsers(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewUserResponse))
}

func (h *CatalogHandler) GetUser(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	u, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(u))
}
