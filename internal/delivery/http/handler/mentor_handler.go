package handler

import (
	"strings"

	"upath/internal/delivery/http/dto"
	"upath/internal/pkg/response"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MentorHandler struct {
	uc usecase.BookingUsecase
}

func NewMentorHandler(uc usecase.BookingUsecase) *MentorHandler {
	return &MentorHandler{uc: uc}
}

func (h *MentorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/mentors", h.List)
	r.Post("/mentors/:id/book", h.Book)
	r.Delete("/mentors/:id/book", h.Unbook)
	r.Get("/users/:id/meetings", h.ListMeetings)
}

func (h *MentorHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListMentors(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewMentorResponse))
}

func (h *MentorHandler) Book(c fiber.Ctx) error {
	mentorID, menteeID, err := bookingTarget(c)
	if err != nil {
		return err
	}
	if err := h.uc.Book(c.Context(), mentorID, menteeID); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, fiber.StatusCreated)
}

func (h *MentorHandler) Unbook(c fiber.Ctx) error {
	mentorID, menteeID, err := bookingTarget(c)
	if err != nil {
		return err
	}
	if err := h.uc.Unbook(c.Context(), mentorID, menteeID); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, fiber.StatusOK)
}

func (h *MentorHandler) ListMeetings(c fiber.Ctx) error {
	userID, err := userParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.ListMeetings(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.MapSlice(items, dto.NewMeetingResponse))
}

// bookingTarget reads the mentor from the path and the mentee from the body,
// falling back to the mentee_id query parameter. The usecase substitutes the
// demo mentee when both are empty.
func bookingTarget(c fiber.Ctx) (int, string, error) {
	mentorID, err := intParam(c, "id", "Invalid mentor ID")
	if err != nil {
		return 0, "", err
	}

	var req dto.MenteeRequest
	if err := bindJSON(c, &req, "Invalid request body"); err != nil {
		return 0, "", err
	}
	mentee := strings.TrimSpace(req.MenteeID)
	if mentee == "" {
		mentee = strings.TrimSpace(c.Query("mentee_id"))
	}
	return mentorID, mentee, nil
}
