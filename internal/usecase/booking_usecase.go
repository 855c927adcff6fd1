package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"upath/internal/domain/mentor"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
)

// DefaultMenteeID is the demo identity used when a request names no mentee.
const DefaultMenteeID = "11111111-1111-1111-1111-111111111111"

// MeetingLeadTime is how far ahead a new meeting is scheduled.
const MeetingLeadTime = 7 * 24 * time.Hour

// AvailabilityNotifier is told about committed booking changes.
type AvailabilityNotifier interface {
	MentorAvailabilityChanged(mentorID int, available bool)
}

type BookingUsecase interface {
	ListMentors(ctx context.Context) ([]mentor.Mentor, error)
	ListMeetings(ctx context.Context, menteeID string) ([]mentor.Meeting, error)
	Book(ctx context.Context, mentorID int, menteeID string) error
	Unbook(ctx context.Context, mentorID int, menteeID string) error
}

type Booking struct {
	repo     repository.MentorRepository
	notifier AvailabilityNotifier
	log      *logger.Logger
	now      func() time.Time
}

func NewBookingUsecase(repo repository.MentorRepository, notifier AvailabilityNotifier, log *logger.Logger) *Booking {
	if log == nil {
		log = logger.NewNop()
	}
	return &Booking{repo: repo, notifier: notifier, log: log, now: time.Now}
}

func MenteeOrDefault(menteeID string) string {
	menteeID = strings.TrimSpace(menteeID)
	if menteeID == "" {
		return DefaultMenteeID
	}
	return menteeID
}

func (b *Booking) ListMentors(ctx context.Context) ([]mentor.Mentor, error) {
	items, err := b.repo.List(ctx)
	if err != nil {
		b.log.Error("list mentors failed", "error", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (b *Booking) ListMeetings(ctx context.Context, menteeID string) ([]mentor.Meeting, error) {
	items, err := b.repo.ListMeetingsByMentee(ctx, MenteeOrDefault(menteeID))
	if err != nil {
		b.log.Error("list meetings failed", "mentee_id", menteeID, "error", err)
		return nil, ErrInternal
	}
	return items, nil
}

// Book schedules a meeting one week out. The per-mentee check runs first so
// a mentee re-booking their own mentor gets the more specific conflict.
func (b *Booking) Book(ctx context.Context, mentorID int, menteeID string) error {
	menteeID = MenteeOrDefault(menteeID)

	err := b.repo.WithMentorLock(ctx, mentorID, func(tx repository.BookingTx) error {
		mine, err := tx.HasScheduledWith(ctx, mentorID, menteeID)
		if err != nil {
			return err
		}
		if mine {
			return ErrAlreadyBookedByMentee
		}

		taken, err := tx.HasScheduled(ctx, mentorID)
		if err != nil {
			return err
		}
		if taken {
			return ErrMentorAlreadyBooked
		}

		return tx.InsertScheduled(ctx, mentorID, menteeID, b.now().Add(MeetingLeadTime))
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyBookedByMentee), errors.Is(err, ErrMentorAlreadyBooked):
			return err
		case errors.Is(err, repository.ErrMentorBooked):
			return ErrMentorAlreadyBooked
		case errors.Is(err, repository.ErrMentorNotFound):
			return ErrMentorNotFound
		case errors.Is(err, repository.ErrMenteeNotFound):
			return ErrMenteeNotFound
		default:
			b.log.Error("book mentor failed", "mentor_id", mentorID, "mentee_id", menteeID, "error", err)
			return ErrInternal
		}
	}

	b.log.Info("mentor booked", "mentor_id", mentorID, "mentee_id", menteeID)
	b.notify(mentorID, false)
	return nil
}

func (b *Booking) Unbook(ctx context.Context, mentorID int, menteeID string) error {
	menteeID = MenteeOrDefault(menteeID)

	affected, err := b.repo.CancelScheduled(ctx, mentorID, menteeID)
	if err != nil {
		b.log.Error("cancel booking failed", "mentor_id", mentorID, "mentee_id", menteeID, "error", err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	b.log.Info("mentor booking cancelled", "mentor_id", mentorID, "mentee_id", menteeID)
	b.notify(mentorID, true)
	return nil
}

func (b *Booking) notify(mentorID int, available bool) {
	if b.notifier == nil {
		return
	}
	b.notifier.MentorAvailabilityChanged(mentorID, available)
}
