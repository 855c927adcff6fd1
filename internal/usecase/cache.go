package usecase

import (
	"context"
	"strings"
	"time"
)

// JSONCache is the read-through cache for reference lists. Implementations
// report a miss, not an error, when the backing store is unavailable.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	GoalsCacheKey        = "goals:list"
	ResourcesCachePrefix = "resources:list:"
)

func ResourcesCacheKey(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "all"
	}
	return ResourcesCachePrefix + category
}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func cacheOrNoop(c JSONCache) JSONCache {
	if c == nil {
		return noopCache{}
	}
	return c
}
