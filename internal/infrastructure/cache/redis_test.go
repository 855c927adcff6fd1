package cache

import (
	"context"
	"testing"
	"time"

	"upath/internal/config"
	"upath/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled_BypassesEverything(t *testing.T) {
	c := disabled(logger.NewNop(), time.Minute)
	ctx := context.Background()

	assert.False(t, c.Available())
	require.NoError(t, c.SetJSON(ctx, "goals:list", []int{1, 2}, time.Minute))

	var out []int
	hit, err := c.GetJSON(ctx, "goals:list", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.NoError(t, c.DeleteByPattern(ctx, "resources:*"))
	assert.NoError(t, c.Close())
	assert.Error(t, c.Ping(ctx))
}

func TestNewRedis_UnreachableServerFallsBack(t *testing.T) {
	// Port 1 on loopback refuses connections immediately.
	c := NewRedis(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: "1"}, logger.NewNop())
	assert.False(t, c.Available())
	assert.Equal(t, 10*time.Minute, c.ttl)

	var out map[string]any
	hit, err := c.GetJSON(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Error(t, c.Ping(context.Background()))
}
