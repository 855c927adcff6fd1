package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/resource"
)

type BookmarkRepository interface {
	List(ctx context.Context, userID string) ([]resource.Bookmark, error)
	Add(ctx context.Context, userID string, resourceID int) (resource.Bookmark, error)
	Remove(ctx context.Context, userID string, resourceID int) error
}

type PostgresBookmarkRepository struct {
	db database.DB
}

func NewPostgresBookmarkRepository(db database.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

const bookmarkSelect = `SELECT b.user_id, b.resource_id, b.created_at,
   r.id, r.title, r.description, r.category, r.link, r.created_at
 FROM resource_bookmarks b
 JOIN resources r ON r.id = b.resource_id`

func scanBookmark(row database.Row) (resource.Bookmark, error) {
	var b resource.Bookmark
	err := row.Scan(
		&b.UserID, &b.ResourceID, &b.CreatedAt,
		&b.Resource.ID, &b.Resource.Title, &b.Resource.Description, &b.Resource.Category, &b.Resource.Link, &b.Resource.CreatedAt,
	)
	return b, err
}

func (r *PostgresBookmarkRepository) List(ctx context.Context, userID string) ([]resource.Bookmark, error) {
	rows, err := r.db.Query(ctx, bookmarkSelect+`
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC, b.resource_id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add is idempotent: bookmarking twice returns the original bookmark.
func (r *PostgresBookmarkRepository) Add(ctx context.Context, userID string, resourceID int) (resource.Bookmark, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resource_bookmarks (user_id, resource_id) VALUES ($1, $2) ON CONFLICT (user_id, resource_id) DO NOTHING`,
		userID, resourceID,
	)
	if err != nil {
		if constraint, ok := database.ForeignKeyViolation(err); ok {
			if constraint == "resource_bookmarks_resource_fk" {
				return resource.Bookmark{}, ErrResourceNotFound
			}
			return resource.Bookmark{}, ErrUserNotFound
		}
		return resource.Bookmark{}, err
	}

	b, err := scanBookmark(r.db.QueryRow(ctx, bookmarkSelect+`
		 WHERE b.user_id = $1 AND b.resource_id = $2`,
		userID, resourceID,
	))
	if err != nil {
		if database.IsNoRows(err) {
			return resource.Bookmark{}, ErrBookmarkNotFound
		}
		return resource.Bookmark{}, err
	}
	return b, nil
}

func (r *PostgresBookmarkRepository) Remove(ctx context.Context, userID string, resourceID int) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM resource_bookmarks WHERE user_id = $1 AND resource_id = $2`,
		userID, resourceID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
