package importer

import (
	"context"
	"time"

	"upath/internal/database"
	"upath/internal/domain/resource"

	"github.com/google/uuid"
)

const upsertResourceSQL = `
INSERT INTO resources (title, description, category, link)
VALUES ($1, $2, $3, $4)
ON CONFLICT (link) DO UPDATE SET
	title = EXCLUDED.title,
	description = CASE WHEN EXCLUDED.description = '' THEN resources.description ELSE EXCLUDED.description END,
	category = EXCLUDED.category`

func createRun(ctx context.Context, db database.DB, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO resource_import_runs (id, source, status, started_at) VALUES ($1, $2, $3, $4)`,
		id, source, resource.RunRunning, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func finishRun(ctx context.Context, db database.DB, id uuid.UUID, status string, imported int, runErr error) error {
	var msg any
	if runErr != nil {
		msg = runErr.Error()
	}
	_, err := db.Exec(ctx,
		`UPDATE resource_import_runs SET status = $2, imported = $3, error = $4, finished_at = $5 WHERE id = $1`,
		id, status, imported, msg, time.Now().UTC(),
	)
	return err
}

func upsertResource(ctx context.Context, db database.DB, r resource.Resource) error {
	_, err := db.Exec(ctx, upsertResourceSQL, r.Title, r.Description, r.Category, r.Link)
	return err
}
