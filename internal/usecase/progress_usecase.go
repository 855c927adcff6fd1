package usecase

import (
	"context"
	"errors"

	"upath/internal/domain/user"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
)

type ProgressUsecase interface {
	SetGoal(ctx context.Context, userID string, goalID int) error
	// EnsureProgress falls back to the user's current goal when goalID is nil.
	EnsureProgress(ctx context.Context, userID string, goalID *int) (user.Progress, error)
	UpdateMilestone(ctx context.Context, userID string, goalID int, patch user.MilestonePatch) (user.Progress, error)
	ListProgress(ctx context.Context, userID string) ([]user.Progress, error)
	ListAllProgress(ctx context.Context) ([]user.Progress, error)
}

type Progress struct {
	users    repository.UserRepository
	goals    repository.GoalRepository
	progress repository.ProgressRepository
	log      *logger.Logger
}

func NewProgressUsecase(users repository.UserRepository, goals repository.GoalRepository, progress repository.ProgressRepository, log *logger.Logger) *Progress {
	if log == nil {
		log = logger.NewNop()
	}
	return &Progress{users: users, goals: goals, progress: progress, log: log}
}

func (p *Progress) SetGoal(ctx context.Context, userID string, goalID int) error {
	exists, err := p.goals.Exists(ctx, goalID)
	if err != nil {
		p.log.Error("goal lookup failed", "goal_id", goalID, "error", err)
		return ErrInternal
	}
	if !exists {
		return ErrGoalNotFound
	}

	if err := p.users.SetGoal(ctx, userID, goalID); err != nil {
		return p.mapRepoError("set goal", err)
	}
	return nil
}

func (p *Progress) EnsureProgress(ctx context.Context, userID string, goalID *int) (user.Progress, error) {
	if goalID == nil {
		u, err := p.users.GetByID(ctx, userID)
		if err != nil {
			return user.Progress{}, p.mapRepoError("load user", err)
		}
		if u.GoalID == nil {
			return user.Progress{}, ErrNoGoalSelected
		}
		goalID = u.GoalID
	}

	row, err := p.progress.Ensure(ctx, userID, *goalID)
	if err != nil {
		return user.Progress{}, p.mapRepoError("ensure progress", err)
	}
	return row, nil
}

func (p *Progress) UpdateMilestone(ctx context.Context, userID string, goalID int, patch user.MilestonePatch) (user.Progress, error) {
	if patch.Empty() {
		return user.Progress{}, ErrNoMilestoneStatus
	}
	row, err := p.progress.Update(ctx, userID, goalID, patch)
	if err != nil {
		return user.Progress{}, p.mapRepoError("update milestone", err)
	}
	return row, nil
}

func (p *Progress) ListProgress(ctx context.Context, userID string) ([]user.Progress, error) {
	rows, err := p.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, p.mapRepoError("list progress", err)
	}
	return rows, nil
}

func (p *Progress) ListAllProgress(ctx context.Context) ([]user.Progress, error) {
	rows, err := p.progress.ListAll(ctx)
	if err != nil {
		return nil, p.mapRepoError("list all progress", err)
	}
	return rows, nil
}

func (p *Progress) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrGoalNotFound):
		return ErrGoalNotFound
	case errors.Is(err, repository.ErrProgressNotFound):
		return ErrProgressNotFound
	default:
		p.log.Error(op+" failed", "error", err)
		return ErrInternal
	}
}
