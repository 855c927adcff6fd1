package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/goal"
)

type GoalRepository interface {
	List(ctx context.Context) ([]goal.Goal, error)
	Exists(ctx context.Context, goalID int) (bool, error)
}

type PostgresGoalRepository struct {
	db database.DB
}

func NewPostgresGoalRepository(db database.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func (r *PostgresGoalRepository) List(ctx context.Context) ([]goal.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT goal_id, title, milestone1, milestone2, milestone_n, image1_src, image_n_src
		 FROM goals
		 ORDER BY goal_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]goal.Goal, 0)
	for rows.Next() {
		var g goal.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Milestone1, &g.Milestone2, &g.MilestoneN, &g.Image1Src, &g.ImageNSrc); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGoalRepository) Exists(ctx context.Context, goalID int) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM goals WHERE goal_id = $1)`, goalID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
