package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"upath/internal/domain/user"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
)

const (
	MaxInterestsLength = 2000
	MaxSelectedPaths   = 20
	MaxPathLength      = 100
)

type PreferencesUsecase interface {
	// GetPreferences returns an empty record for users with nothing stored.
	GetPreferences(ctx context.Context, userID string) (user.Preferences, error)
	MergePreferences(ctx context.Context, userID string, patch user.PreferencesPatch) (user.Preferences, error)
}

type Preferences struct {
	repo repository.PreferencesRepository
	log  *logger.Logger
}

func NewPreferencesUsecase(repo repository.PreferencesRepository, log *logger.Logger) *Preferences {
	if log == nil {
		log = logger.NewNop()
	}
	return &Preferences{repo: repo, log: log}
}

func (p *Preferences) GetPreferences(ctx context.Context, userID string) (user.Preferences, error) {
	prefs, ok, err := p.repo.Get(ctx, userID)
	if err != nil {
		p.log.Error("get preferences failed", "user_id", userID, "error", err)
		return user.Preferences{}, ErrInternal
	}
	if !ok {
		return user.Preferences{UserID: userID, SelectedPaths: []string{}}, nil
	}
	return prefs, nil
}

func (p *Preferences) MergePreferences(ctx context.Context, userID string, patch user.PreferencesPatch) (user.Preferences, error) {
	patch, err := normalizePreferences(patch)
	if err != nil {
		return user.Preferences{}, err
	}

	prefs, err := p.repo.Merge(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.Preferences{}, ErrUserNotFound
		}
		p.log.Error("merge preferences failed", "user_id", userID, "error", err)
		return user.Preferences{}, ErrInternal
	}
	return prefs, nil
}

// normalizePreferences trims and de-duplicates selected paths, keeping first
// occurrence order, and enforces the size limits.
func normalizePreferences(patch user.PreferencesPatch) (user.PreferencesPatch, error) {
	if patch.Interests != nil && utf8.RuneCountInString(*patch.Interests) > MaxInterestsLength {
		return patch, fmt.Errorf("%w: interests must be at most %d characters", ErrInvalidInput, MaxInterestsLength)
	}
	if !patch.PathsSet {
		patch.SelectedPaths = nil
		return patch, nil
	}

	seen := make(map[string]struct{}, len(patch.SelectedPaths))
	paths := make([]string, 0, len(patch.SelectedPaths))
	for _, raw := range patch.SelectedPaths {
		path := strings.TrimSpace(raw)
		if path == "" {
			continue
		}
		if utf8.RuneCountInString(path) > MaxPathLength {
			return patch, fmt.Errorf("%w: each selected path must be at most %d characters", ErrInvalidInput, MaxPathLength)
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	if len(paths) > MaxSelectedPaths {
		return patch, fmt.Errorf("%w: at most %d selected paths are allowed", ErrInvalidInput, MaxSelectedPaths)
	}
	patch.SelectedPaths = paths
	return patch, nil
}
