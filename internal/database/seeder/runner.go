package seeder

import (
	"context"
	"errors"
	"fmt"

	"upath/internal/database"
	"upath/internal/pkg/logger"
)

type Runner struct {
	Seeders []Seeder
	Log     *logger.Logger
}

// Run applies every seeder in order and reports the rows each one inserted,
// keyed by seeder name.
func (r Runner) Run(ctx context.Context, db database.DB) (map[string]int64, error) {
	if db == nil {
		return nil, errors.New("seeder: nil db")
	}
	log := r.Log
	if log == nil {
		log = logger.NewNop()
	}
	counts := make(map[string]int64, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		inserted, err := s.Run(ctx, db)
		if err != nil {
			return counts, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		counts[s.Name()] += inserted
		log.Debug("seeder finished", "seeder", s.Name(), "inserted", inserted)
	}
	return counts, nil
}

// inTx runs fn inside a transaction and returns the summed rows affected.
func inTx(ctx context.Context, db database.DB, fn func(tx database.Tx) (int64, error)) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n, err := fn(tx)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}
