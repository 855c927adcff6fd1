package handler

import (
	"upath/internal/delivery/http/dto"
	"upath/internal/domain/user"
	"upath/internal/pkg/response"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PreferencesHandler struct {
	uc usecase.PreferencesUsecase
}

func NewPreferencesHandler(uc usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func (h *PreferencesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users/:id/preferences", h.Get)
	r.Put("/users/:id/preferences", h.Merge)
}

func (h *PreferencesHandler) Get(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.GetPreferences(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewPreferencesResponse(p))
}

func (h *PreferencesHandler) Merge(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PreferencesRequest
	if err := bindJSON(c, &req, "Invalid preferences"); err != nil {
		return err
	}

	patch := user.PreferencesPatch{Interests: req.Interests}
	if req.SelectedPaths != nil {
		patch.SelectedPaths = *req.SelectedPaths
		patch.PathsSet = true
	}

	p, err := h.uc.MergePreferences(c.Context(), userID, patch)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewPreferencesResponse(p))
}
