package seeder

import (
	"context"

	"upath/internal/database"
)

// Seeder inserts reference rows. Implementations must be idempotent: every
// insert uses ON CONFLICT DO NOTHING so reruns never overwrite user edits.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int64, error)
}
