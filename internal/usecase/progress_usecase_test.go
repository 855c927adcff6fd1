package usecase

import (
	"context"
	"errors"
	"testing"

	"upath/internal/domain/goal"
	"upath/internal/domain/user"
	"upath/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoalRepo struct {
	goals []goal.Goal
	err   error
	calls int
}

func (f *fakeGoalRepo) List(context.Context) ([]goal.Goal, error) {
	f.calls++
	return f.goals, f.err
}

func (f *fakeGoalRepo) Exists(_ context.Context, goalID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, g := range f.goals {
		if g.ID == goalID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[string]user.User
	// progress is shared with fakeProgressRepo so SetGoal can create rows.
	progress *fakeProgressRepo
}

func (f *fakeUserRepo) List(context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (user.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) SetGoal(ctx context.Context, userID string, goalID int) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.GoalID = &goalID
	f.users[userID] = u
	_, err := f.progress.Ensure(ctx, userID, goalID)
	return err
}

type progressKey struct {
	userID string
	goalID int
}

type fakeProgressRepo struct {
	users map[string]user.User
	rows  map[progressKey]user.Progress
	next  int64
}

func (f *fakeProgressRepo) Ensure(_ context.Context, userID string, goalID int) (user.Progress, error) {
	if _, ok := f.users[userID]; !ok {
		return user.Progress{}, repository.ErrUserNotFound
	}
	k := progressKey{userID, goalID}
	if row, ok := f.rows[k]; ok {
		return row, nil
	}
	f.next++
	row := user.Progress{ID: f.next, UserID: userID, GoalID: goalID}
	f.rows[k] = row
	return row, nil
}

func (f *fakeProgressRepo) Update(_ context.Context, userID string, goalID int, patch user.MilestonePatch) (user.Progress, error) {
	k := progressKey{userID, goalID}
	row, ok := f.rows[k]
	if !ok {
		return user.Progress{}, repository.ErrProgressNotFound
	}
	if patch.Milestone1IsComplete != nil {
		row.Milestone1IsComplete = *patch.Milestone1IsComplete
	}
	if patch.Milestone2IsComplete != nil {
		row.Milestone2IsComplete = *patch.Milestone2IsComplete
	}
	if patch.MilestoneNIsComplete != nil {
		row.MilestoneNIsComplete = *patch.MilestoneNIsComplete
	}
	f.rows[k] = row
	return row, nil
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID string) ([]user.Progress, error) {
	out := []user.Progress{}
	for k, row := range f.rows {
		if k.userID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) ListAll(context.Context) ([]user.Progress, error) {
	out := []user.Progress{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func newProgressFixture() (*Progress, *fakeUserRepo, *fakeProgressRepo) {
	users := map[string]user.User{
		DefaultMenteeID: {ID: DefaultMenteeID, First: "Jordan"},
		"no-goal":       {ID: "no-goal", First: "Sam"},
	}
	progress := &fakeProgressRepo{users: users, rows: map[progressKey]user.Progress{}}
	userRepo := &fakeUserRepo{users: users, progress: progress}
	goals := &fakeGoalRepo{goals: []goal.Goal{{ID: 1}, {ID: 2}}}
	return NewProgressUsecase(userRepo, goals, progress, nil), userRepo, progress
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestProgressUsecase_SetGoal(t *testing.T) {
	uc, users, progress := newProgressFixture()
	ctx := context.Background()

	require.NoError(t, uc.SetGoal(ctx, DefaultMenteeID, 2))
	assert.Equal(t, 2, *users.users[DefaultMenteeID].GoalID)
	assert.Len(t, progress.rows, 1)

	assert.ErrorIs(t, uc.SetGoal(ctx, DefaultMenteeID, 42), ErrGoalNotFound)
	assert.ErrorIs(t, uc.SetGoal(ctx, "ghost", 1), ErrUserNotFound)
}

func TestProgressUsecase_SetGoal_DoesNotResetExistingProgress(t *testing.T) {
	uc, _, _ := newProgressFixture()
	ctx := context.Background()

	_, err := uc.EnsureProgress(ctx, DefaultMenteeID, intPtr(1))
	require.NoError(t, err)
	_, err = uc.UpdateMilestone(ctx, DefaultMenteeID, 1, user.MilestonePatch{Milestone1IsComplete: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, uc.SetGoal(ctx, DefaultMenteeID, 1))

	rows, err := uc.ListProgress(ctx, DefaultMenteeID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Milestone1IsComplete)
}

func TestProgressUsecase_EnsureProgress_IsIdempotent(t *testing.T) {
	uc, _, progress := newProgressFixture()
	ctx := context.Background()

	first, err := uc.EnsureProgress(ctx, DefaultMenteeID, intPtr(1))
	require.NoError(t, err)
	second, err := uc.EnsureProgress(ctx, DefaultMenteeID, intPtr(1))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, progress.rows, 1)
}

func TestProgressUsecase_EnsureProgress_FallsBackToCurrentGoal(t *testing.T) {
	uc, _, _ := newProgressFixture()
	ctx := context.Background()

	_, err := uc.EnsureProgress(ctx, "no-goal", nil)
	assert.ErrorIs(t, err, ErrNoGoalSelected)

	_, err = uc.EnsureProgress(ctx, "ghost", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, uc.SetGoal(ctx, "no-goal", 2))
	row, err := uc.EnsureProgress(ctx, "no-goal", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, row.GoalID)
}

func TestProgressUsecase_UpdateMilestone_PartialPatch(t *testing.T) {
	uc, _, _ := newProgressFixture()
	ctx := context.Background()

	_, err := uc.UpdateMilestone(ctx, DefaultMenteeID, 1, user.MilestonePatch{})
	assert.ErrorIs(t, err, ErrNoMilestoneStatus)

	_, err = uc.UpdateMilestone(ctx, DefaultMenteeID, 1, user.MilestonePatch{Milestone1IsComplete: boolPtr(true)})
	assert.ErrorIs(t, err, ErrProgressNotFound)

	_, err = uc.EnsureProgress(ctx, DefaultMenteeID, intPtr(1))
	require.NoError(t, err)

	row, err := uc.UpdateMilestone(ctx, DefaultMenteeID, 1, user.MilestonePatch{Milestone2IsComplete: boolPtr(true)})
	require.NoError(t, err)
	assert.False(t, row.Milestone1IsComplete)
	assert.True(t, row.Milestone2IsComplete)
	assert.False(t, row.MilestoneNIsComplete)

	row, err = uc.UpdateMilestone(ctx, DefaultMenteeID, 1, user.MilestonePatch{MilestoneNIsComplete: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, row.Milestone2IsComplete, "untouched flag keeps its value")
	assert.True(t, row.MilestoneNIsComplete)
}

func TestProgressUsecase_StoreErrorIsInternal(t *testing.T) {
	goals := &fakeGoalRepo{err: errors.New("db down")}
	uc := NewProgressUsecase(&fakeUserRepo{}, goals, &fakeProgressRepo{}, nil)

	assert.ErrorIs(t, uc.SetGoal(context.Background(), DefaultMenteeID, 1), ErrInternal)
}
