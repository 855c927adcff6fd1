package usecase

import (
	"context"
	"errors"

	"upath/internal/domain/goal"
	"upath/internal/domain/user"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
)

// CatalogUsecase serves the read-only goal and user listings.
type CatalogUsecase interface {
	ListGoals(ctx context.Context) ([]goal.Goal, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, userID string) (user.User, error)
}

type Catalog struct {
	goals repository.GoalRepository
	users repository.UserRepository
	cache JSONCache
	log   *logger.Logger
}

func NewCatalogUsecase(goals repository.GoalRepository, users repository.UserRepository, cache JSONCache, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.NewNop()
	}
	return &Catalog{goals: goals, users: users, cache: cacheOrNoop(cache), log: log}
}

// ListGoals reads through the cache. Goals are immutable, so entries only
// expire by TTL.
func (c *Catalog) ListGoals(ctx context.Context) ([]goal.Goal, error) {
	var cached []goal.Goal
	if hit, err := c.cache.GetJSON(ctx, GoalsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := c.goals.List(ctx)
	if err != nil {
		c.log.Error("list goals failed", "error", err)
		return nil, ErrInternal
	}
	if err := c.cache.SetJSON(ctx, GoalsCacheKey, items, 0); err != nil {
		c.log.Debug("cache goals failed", "error", err)
	}
	return items, nil
}

func (c *Catalog) ListUsers(ctx context.Context) ([]user.User, error) {
	items, err := c.users.List(ctx)
	if err != nil {
		c.log.Error("list users failed", "error", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (c *Catalog) GetUser(ctx context.Context, userID string) (user.User, error) {
	u, err := c.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUserNotFound
		}
		c.log.Error("get user failed", "user_id", userID, "error", err)
		return user.User{}, ErrInternal
	}
	return u, nil
}
