package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/user"
)

type PreferencesRepository interface {
	// Get returns ok=false when the user has no stored preferences.
	Get(ctx context.Context, userID string) (user.Preferences, bool, error)
	Merge(ctx context.Context, userID string, patch user.PreferencesPatch) (user.Preferences, error)
}

type PostgresPreferencesRepository struct {
	db database.DB
}

func NewPostgresPreferencesRepository(db database.DB) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

func (r *PostgresPreferencesRepository) Get(ctx context.Context, userID string) (user.Preferences, bool, error) {
	var p user.Preferences
	err := r.db.QueryRow(ctx,
		`SELECT user_id, interests, selected_paths, updated_at FROM student_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Interests, &p.SelectedPaths, &p.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return user.Preferences{}, false, nil
		}
		return user.Preferences{}, false, err
	}
	if p.SelectedPaths == nil {
		p.SelectedPaths = []string{}
	}
	return p, true, nil
}

// Merge inserts the record or, on conflict, replaces only the fields the
// patch carries.
func (r *PostgresPreferencesRepository) Merge(ctx context.Context, userID string, patch user.PreferencesPatch) (user.Preferences, error) {
	paths := patch.SelectedPaths
	if paths == nil {
		paths = []string{}
	}

	var p user.Preferences
	err := r.db.QueryRow(ctx,
		`INSERT INTO student_preferences AS sp (user_id, interests, selected_paths, updated_at)
		 VALUES ($1, $2, $3::text[], now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   interests = CASE WHEN $4::boolean THEN EXCLUDED.interests ELSE sp.interests END,
		   selected_paths = CASE WHEN $5::boolean THEN EXCLUDED.selected_paths ELSE sp.selected_paths END,
		   updated_at = now()
		 RETURNING user_id, interests, selected_paths, updated_at`,
		userID, patch.Interests, paths, patch.Interests != nil, patch.PathsSet,
	).Scan(&p.UserID, &p.Interests, &p.SelectedPaths, &p.UpdatedAt)
	if err != nil {
		if _, ok := database.ForeignKeyViolation(err); ok {
			return user.Preferences{}, ErrUserNotFound
		}
		return user.Preferences{}, err
	}
	if p.SelectedPaths == nil {
		p.SelectedPaths = []string{}
	}
	return p, nil
}
