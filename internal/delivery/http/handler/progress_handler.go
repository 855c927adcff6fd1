package handler

import (
	"upath/internal/delivery/http/dto"
	"upath/internal/delivery/http/middleware"
	"upath/internal/domain/user"
	"upath/internal/pkg/response"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressHandler struct {
	uc usecase.ProgressUsecase
}

func NewProgressHandler(uc usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Patch("/users/:id/goal", h.SetGoal)
	r.Get("/users/:id/progress", h.ListForUser)
	r.Post("/users/:id/progress", h.Ensure)
	r.Get("/progress", h.ListAll)
	r.Patch("/progress/:userId/:goalId", h.UpdateMilestone)
}

func (h *ProgressHandler) SetGoal(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SetGoalRequest
	if err := bindJSON(c, &req, "Invalid goal ID"); err != nil {
		return err
	}
	if req.GoalID == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid goal ID", nil)
	}

	if err := h.uc.SetGoal(c.Context(), userID, *req.GoalID); err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.SetGoalResponse{ID: userID, GoalID: *req.GoalID})
}

func (h *ProgressHandler) ListForUser(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	rows, err := h.uc.ListProgress(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(rows, dto.NewProgressResponse))
}

func (h *ProgressHandler) Ensure(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.EnsureProgressRequest
	if err := bindJSON(c, &req, "Invalid goal ID"); err != nil {
		return err
	}

	row, err := h.uc.EnsureProgress(c.Context(), userID, req.GoalID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewProgressResponse(row))
}

func (h *ProgressHandler) ListAll(c fiber.Ctx) error {
	rows, err := h.uc.ListAllProgress(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(rows, dto.NewProgressResponse))
}

func (h *ProgressHandler) UpdateMilestone(c fiber.Ctx) error {
	userID, err := userParam(c, "userId")
	if err != nil {
		return err
	}
	goalID, err := intParam(c, "goalId", "Invalid goal ID")
	if err != nil {
		return err
	}

	var req dto.UpdateMilestoneRequest
	if err := bindJSON(c, &req, "Invalid milestone status"); err != nil {
		return err
	}

	row, err := h.uc.UpdateMilestone(c.Context(), userID, goalID, user.MilestonePatch{
		Milestone1IsComplete: req.Milestone1IsComplete,
		Milestone2IsComplete: req.Milestone2IsComplete,
		MilestoneNIsComplete: req.MilestoneNIsComplete,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewProgressResponse(row))
}
