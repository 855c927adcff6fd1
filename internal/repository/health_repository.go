package repository

import (
	"context"
	"time"

	"upath/internal/database"
)

type HealthRepository interface {
	DBTime(ctx context.Context) (time.Time, error)
}

type PostgresHealthRepository struct {
	db database.DB
}

func NewPostgresHealthRepository(db database.DB) *PostgresHealthRepository {
	return &PostgresHealthRepository{db: db}
}

func (r *PostgresHealthRepository) DBTime(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.QueryRow(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
