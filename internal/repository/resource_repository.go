package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/resource"
)

type ResourceRepository interface {
	// List returns every resource when category is empty.
	List(ctx context.Context, category string) ([]resource.Resource, error)
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) List(ctx context.Context, category string) ([]resource.Resource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, category, link, created_at
		 FROM resources
		 WHERE $1 = '' OR lower(category) = lower($1)
		 ORDER BY id`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Resource, 0)
	for rows.Next() {
		var res resource.Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Description, &res.Category, &res.Link, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
