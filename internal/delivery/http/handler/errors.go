package handler

import (
	"errors"
	"strings"

	"upath/internal/delivery/http/middleware"
	"upath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

var usecaseErrors = []struct {
	err    error
	status int
	msg    string
}{
	{usecase.ErrNoMilestoneStatus, fiber.StatusBadRequest, "No milestone status provided"},
	{usecase.ErrNoGoalSelected, fiber.StatusBadRequest, "User has no goal selected"},
	{usecase.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{usecase.ErrGoalNotFound, fiber.StatusNotFound, "Goal not found"},
	{usecase.ErrMentorNotFound, fiber.StatusNotFound, "Mentor not found"},
	{usecase.ErrMenteeNotFound, fiber.StatusNotFound, "Mentee not found"},
	{usecase.ErrProgressNotFound, fiber.StatusNotFound, "Progress not found"},
	{usecase.ErrResourceNotFound, fiber.StatusNotFound, "Resource not found"},
	{usecase.ErrBookmarkNotFound, fiber.StatusNotFound, "Bookmark not found"},
	{usecase.ErrBookingNotFound, fiber.StatusNotFound, "No scheduled booking found"},
	{usecase.ErrAlreadyBookedByMentee, fiber.StatusConflict, "Mentor is already booked by this mentee"},
	{usecase.ErrMentorAlreadyBooked, fiber.StatusConflict, "Mentor is already booked"},
}

func mapUsecaseError(err error) error {
	for _, m := range usecaseErrors {
		if errors.Is(err, m.err) {
			return middleware.NewAppError(m.status, m.msg, err)
		}
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, invalidInputMessage(err), err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
}

// invalidInputMessage drops the sentinel prefix from wrapped validation
// errors, leaving the detail for the client.
func invalidInputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error())
	msg = strings.TrimSpace(strings.TrimPrefix(msg, ":"))
	if msg == "" {
		return "Invalid input"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
