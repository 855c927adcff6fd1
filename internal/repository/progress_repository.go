package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/user"
)

type ProgressRepository interface {
	// Ensure inserts the (user, goal) row if absent and returns the stored
	// row. An existing row is never modified.
	Ensure(ctx context.Context, userID string, goalID int) (user.Progress, error)
	Update(ctx context.Context, userID string, goalID int, patch user.MilestonePatch) (user.Progress, error)
	ListByUser(ctx context.Context, userID string) ([]user.Progress, error)
	ListAll(ctx context.Context) ([]user.Progress, error)
}

type PostgresProgressRepository struct {
	db database.DB
}

func NewPostgresProgressRepository(db database.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

const insertProgressSQL = `INSERT INTO progressstatus (user_id, goal_id) VALUES ($1, $2) ON CONFLICT (user_id, goal_id) DO NOTHING`

const progressColumns = `p.id, p.user_id, p.goal_id, p.milestone1_is_complete, p.milestone2_is_complete, p.milestone_n_is_complete, p.updated_at`

func scanProgress(row database.Row) (user.Progress, error) {
	var p user.Progress
	err := row.Scan(&p.ID, &p.UserID, &p.GoalID, &p.Milestone1IsComplete, &p.Milestone2IsComplete, &p.MilestoneNIsComplete, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProgressRepository) Ensure(ctx context.Context, userID string, goalID int) (user.Progress, error) {
	if _, err := r.db.Exec(ctx, insertProgressSQL, userID, goalID); err != nil {
		if constraint, ok := database.ForeignKeyViolation(err); ok {
			if constraint == "progressstatus_goal_fk" {
				return user.Progress{}, ErrGoalNotFound
			}
			return user.Progress{}, ErrUserNotFound
		}
		return user.Progress{}, err
	}

	p, err := scanProgress(r.db.QueryRow(ctx,
		`SELECT `+progressColumns+` FROM progressstatus p WHERE p.user_id = $1 AND p.goal_id = $2`,
		userID, goalID,
	))
	if err != nil {
		if database.IsNoRows(err) {
			return user.Progress{}, ErrProgressNotFound
		}
		return user.Progress{}, err
	}
	return p, nil
}

func (r *PostgresProgressRepository) Update(ctx context.Context, userID string, goalID int, patch user.MilestonePatch) (user.Progress, error) {
	p, err := scanProgress(r.db.QueryRow(ctx,
		`UPDATE progressstatus p SET
		   milestone1_is_complete = COALESCE($3::boolean, p.milestone1_is_complete),
		   milestone2_is_complete = COALESCE($4::boolean, p.milestone2_is_complete),
		   milestone_n_is_complete = COALESCE($5::boolean, p.milestone_n_is_complete),
		   updated_at = now()
		 WHERE p.user_id = $1 AND p.goal_id = $2
		 RETURNING `+progressColumns,
		userID, goalID, patch.Milestone1IsComplete, patch.Milestone2IsComplete, patch.MilestoneNIsComplete,
	))
	if err != nil {
		if database.IsNoRows(err) {
			return user.Progress{}, ErrProgressNotFound
		}
		return user.Progress{}, err
	}
	return p, nil
}

func (r *PostgresProgressRepository) ListByUser(ctx context.Context, userID string) ([]user.Progress, error) {
	return r.list(ctx,
		`SELECT `+progressColumns+`, g.title, g.milestone1, g.milestone2, g.milestone_n
		 FROM progressstatus p
		 JOIN goals g ON g.goal_id = p.goal_id
		 WHERE p.user_id = $1
		 ORDER BY p.goal_id`,
		userID,
	)
}

func (r *PostgresProgressRepository) ListAll(ctx context.Context) ([]user.Progress, error) {
	return r.list(ctx,
		`SELECT `+progressColumns+`, g.title, g.milestone1, g.milestone2, g.milestone_n
		 FROM progressstatus p
		 JOIN goals g ON g.goal_id = p.goal_id
		 ORDER BY p.goal_id, p.user_id`,
	)
}

func (r *PostgresProgressRepository) list(ctx context.Context, query string, args ...any) ([]user.Progress, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Progress, 0)
	for rows.Next() {
		var p user.Progress
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.GoalID,
			&p.Milestone1IsComplete, &p.Milestone2IsComplete, &p.MilestoneNIsComplete, &p.UpdatedAt,
			&p.GoalTitle, &p.Milestone1, &p.Milestone2, &p.MilestoneN,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
