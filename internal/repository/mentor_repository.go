package repository

import (
	"context"
	"time"

	"upath/internal/database"
	"upath/internal/domain/mentor"
)

type MentorRepository interface {
	List(ctx context.Context) ([]mentor.Mentor, error)
	ListMeetingsByMentee(ctx context.Context, menteeID string) ([]mentor.Meeting, error)

	// WithMentorLock runs fn in a transaction holding a row lock on the
	// mentor, so concurrent bookings of one mentor run one at a time. fn's
	// error rolls the transaction back and is returned unchanged.
	WithMentorLock(ctx context.Context, mentorID int, fn func(tx BookingTx) error) error
	CancelScheduled(ctx context.Context, mentorID int, menteeID string) (int64, error)
}

// BookingTx is the view of meetings available while a mentor is locked.
type BookingTx interface {
	HasScheduledWith(ctx context.Context, mentorID int, menteeID string) (bool, error)
	HasScheduled(ctx context.Context, mentorID int) (bool, error)
	InsertScheduled(ctx context.Context, mentorID int, menteeID string, at time.Time) error
}

type PostgresMentorRepository struct {
	db database.DB
}

func NewPostgresMentorRepository(db database.DB) *PostgresMentorRepository {
	return &PostgresMentorRepository{db: db}
}

func (r *PostgresMentorRepository) List(ctx context.Context) ([]mentor.Mentor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.mentor_id, m.mentor_first, m.mentor_last, m.mentor_region, m.mentor_img_src, m.specialty, m.description,
		   NOT EXISTS (
		     SELECT 1 FROM meetings mt
		     WHERE mt.mentor_id = m.mentor_id AND mt.meetingstatus = 'scheduled'
		   ) AS is_available
		 FROM mentors m
		 ORDER BY m.mentor_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentor.Mentor, 0)
	for rows.Next() {
		var m mentor.Mentor
		if err := rows.Scan(&m.ID, &m.First, &m.Last, &m.Region, &m.ImgSrc, &m.Specialty, &m.Description, &m.IsAvailable); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMentorRepository) ListMeetingsByMentee(ctx context.Context, menteeID string) ([]mentor.Meeting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mt.meeting_id, mt.mentor_id, mt.mentee_id, mt."time", mt.meetingstatus, mt.created_at,
		   m.mentor_first, m.mentor_last, m.specialty
		 FROM meetings mt
		 JOIN mentors m ON m.mentor_id = mt.mentor_id
		 WHERE mt.mentee_id = $1 AND mt.meetingstatus = 'scheduled'
		 ORDER BY mt."time"`,
		menteeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentor.Meeting, 0)
	for rows.Next() {
		var mt mentor.Meeting
		if err := rows.Scan(&mt.ID, &mt.MentorID, &mt.MenteeID, &mt.Time, &mt.Status, &mt.CreatedAt, &mt.MentorFirst, &mt.MentorLast, &mt.Specialty); err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMentorRepository) WithMentorLock(ctx context.Context, mentorID int, fn func(tx BookingTx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var locked int
	if err := tx.QueryRow(ctx, `SELECT mentor_id FROM mentors WHERE mentor_id = $1 FOR UPDATE`, mentorID).Scan(&locked); err != nil {
		if database.IsNoRows(err) {
			return ErrMentorNotFound
		}
		return err
	}

	if err := fn(bookingTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresMentorRepository) CancelScheduled(ctx context.Context, mentorID int, menteeID string) (int64, error) {
	return r.db.Exec(ctx,
		`DELETE FROM meetings
		 WHERE mentor_id = $1 AND mentee_id = $2 AND meetingstatus = 'scheduled'`,
		mentorID, menteeID,
	)
}

type bookingTx struct {
	tx database.Tx
}

func (b bookingTx) HasScheduledWith(ctx context.Context, mentorID int, menteeID string) (bool, error) {
	var exists bool
	err := b.tx.QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM meetings
		   WHERE mentor_id = $1 AND mentee_id = $2 AND meetingstatus = 'scheduled'
		 )`,
		mentorID, menteeID,
	).Scan(&exists)
	return exists, err
}

func (b bookingTx) HasScheduled(ctx context.Context, mentorID int) (bool, error) {
	var exists bool
	err := b.tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM meetings WHERE mentor_id = $1 AND meetingstatus = 'scheduled')`,
		mentorID,
	).Scan(&exists)
	return exists, err
}

func (b bookingTx) InsertScheduled(ctx context.Context, mentorID int, menteeID string, at time.Time) error {
	_, err := b.tx.Exec(ctx,
		`INSERT INTO meetings (mentor_id, mentee_id, "time", meetingstatus)
		 VALUES ($1, $2, $3, 'scheduled')`,
		mentorID, menteeID, at,
	)
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err) {
		return ErrMentorBooked
	}
	if constraint, ok := database.ForeignKeyViolation(err); ok {
		if constraint == "meetings_mentor_fk" {
			return ErrMentorNotFound
		}
		return ErrMenteeNotFound
	}
	return err
}
