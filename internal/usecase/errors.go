package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrUserNotFound     = errors.New("user not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrMenteeNotFound   = errors.New("mentee not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrBookingNotFound  = errors.New("no scheduled booking found")

	ErrAlreadyBookedByMentee = errors.New("mentor is already booked by this mentee")
	ErrMentorAlreadyBooked   = errors.New("mentor is already booked")

	ErrNoMilestoneStatus = errors.New("no milestone status provided")
	ErrNoGoalSelected    = errors.New("user has no goal selected")
)
