package repository

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrMenteeNotFound   = errors.New("mentee not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrMentorBooked     = errors.New("mentor already has a scheduled meeting")
)
