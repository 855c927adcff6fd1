package usecase

import (
	"context"
	"errors"
	"strings"

	"upath/internal/domain/resource"
	"upath/internal/pkg/logger"
	"upath/internal/repository"
)

type ResourceUsecase interface {
	ListResources(ctx context.Context, category string) ([]resource.Resource, error)
	ListBookmarks(ctx context.Context, userID string) ([]resource.Bookmark, error)
	AddBookmark(ctx context.Context, userID string, resourceID int) (resource.Bookmark, error)
	RemoveBookmark(ctx context.Context, userID string, resourceID int) error
}

type Resources struct {
	resources repository.ResourceRepository
	bookmarks repository.BookmarkRepository
	cache     JSONCache
	log       *logger.Logger
}

func NewResourceUsecase(resources repository.ResourceRepository, bookmarks repository.BookmarkRepository, cache JSONCache, log *logger.Logger) *Resources {
	if log == nil {
		log = logger.NewNop()
	}
	return &Resources{resources: resources, bookmarks: bookmarks, cache: cacheOrNoop(cache), log: log}
}

// ListResources filters by category case-insensitively. An unknown category
// is not an error; it simply matches nothing.
func (r *Resources) ListResources(ctx context.Context, category string) ([]resource.Resource, error) {
	category = strings.TrimSpace(category)
	if category != "" {
		canonical, ok := resource.NormalizeCategory(category)
		if !ok {
			return []resource.Resource{}, nil
		}
		category = canonical
	}

	key := ResourcesCacheKey(category)
	var cached []resource.Resource
	if hit, err := r.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := r.resources.List(ctx, category)
	if err != nil {
		r.log.Error("list resources failed", "category", category, "error", err)
		return nil, ErrInternal
	}
	if err := r.cache.SetJSON(ctx, key, items, 0); err != nil {
		r.log.Debug("cache resources failed", "key", key, "error", err)
	}
	return items, nil
}

func (r *Resources) ListBookmarks(ctx context.Context, userID string) ([]resource.Bookmark, error) {
	items, err := r.bookmarks.List(ctx, userID)
	if err != nil {
		r.log.Error("list bookmarks failed", "user_id", userID, "error", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (r *Resources) AddBookmark(ctx context.Context, userID string, resourceID int) (resource.Bookmark, error) {
	b, err := r.bookmarks.Add(ctx, userID, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return resource.Bookmark{}, ErrUserNotFound
		case errors.Is(err, repository.ErrResourceNotFound), errors.Is(err, repository.ErrBookmarkNotFound):
			return resource.Bookmark{}, ErrResourceNotFound
		default:
			r.log.Error("add bookmark failed", "user_id", userID, "resource_id", resourceID, "error", err)
			return resource.Bookmark{}, ErrInternal
		}
	}
	return b, nil
}

func (r *Resources) RemoveBookmark(ctx context.Context, userID string, resourceID int) error {
	if err := r.bookmarks.Remove(ctx, userID, resourceID); err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return ErrBookmarkNotFound
		}
		r.log.Error("remove bookmark failed", "user_id", userID, "resource_id", resourceID, "error", err)
		return ErrInternal
	}
	return nil
}
