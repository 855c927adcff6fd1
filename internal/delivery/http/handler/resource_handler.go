package handler

import (
	"upath/internal/delivery/http/dto"
	"upath/internal/delivery/http/middleware"
	"upath/internal/pkg/response"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

func (h *ResourceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/resources", h.List)
	r.Get("/users/:id/bookmarks", h.ListBookmarks)
	r.Post("/users/:id/bookmarks", h.AddBookmark)
	r.Delete("/users/:id/bookmarks/:resourceId", h.RemoveBookmark)
}

func (h *ResourceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListResources(c.Context(), c.Query("category"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewResourceResponse))
}

func (h *ResourceHandler) ListBookmarks(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.ListBookmarks(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewBookmarkResponse))
}

func (h *ResourceHandler) AddBookmark(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddBookmarkRequest
	if err := bindJSON(c, &req, "Invalid resource ID"); err != nil {
		return err
	}
	if req.ResourceID == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resource ID", nil)
	}

	b, err := h.uc.AddBookmark(c.Context(), userID, *req.ResourceID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewBookmarkResponse(b))
}

func (h *ResourceHandler) RemoveBookmark(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	resourceID, err := intParam(c, "resourceId", "Invalid resource ID")
	if err != nil {
		return err
	}
	if err := h.uc.RemoveBookmark(c.Context(), userID, resourceID); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, fiber.StatusOK)
}
