package app

import (
	"context"
	"errors"
	"testing"

	"upath/internal/pkg/logger"
	"upath/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type recordingCache struct {
	patterns []string
	err      error
}

func (c *recordingCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return c.err
}

func TestInvalidateSeededLists(t *testing.T) {
	ctx := context.Background()

	t.Run("resources inserted", func(t *testing.T) {
		c := &recordingCache{}
		invalidateSeededLists(ctx, c, map[string]int64{"goals": 0, "resources": 8}, logger.NewNop())
		assert.Equal(t, []string{usecase.ResourcesCachePrefix + "*"}, c.patterns)
	})

	t.Run("goals and resources inserted", func(t *testing.T) {
		c := &recordingCache{}
		invalidateSeededLists(ctx, c, map[string]int64{"goals": 3, "resources": 1, "mentors": 5}, logger.NewNop())
		assert.Equal(t, []string{usecase.GoalsCacheKey, usecase.ResourcesCachePrefix + "*"}, c.patterns)
	})

	t.Run("nothing inserted", func(t *testing.T) {
		c := &recordingCache{}
		invalidateSeededLists(ctx, c, map[string]int64{"goals": 0, "resources": 0}, logger.NewNop())
		assert.Empty(t, c.patterns)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		c := &recordingCache{err: errors.New("redis down")}
		invalidateSeededLists(ctx, c, map[string]int64{"goals": 1, "resources": 1}, logger.NewNop())
		assert.Len(t, c.patterns, 2)
	})
}
