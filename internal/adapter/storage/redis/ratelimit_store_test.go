package redis_test

import (
	"context"
	"testing"
	"time"

	"cashout-gateway/internal/adapter/storage/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr, client := newMiniredis(t)
	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			allowed, remaining, err := store.Allow(ctx, "USR_1:payments", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i)
			assert.Equal(t, 3-i, remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		allowed, remaining, err := store.Allow(ctx, "USR_1:payments", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		allowed, remaining, err := store.Allow(ctx, "USR_2:payments", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 4, remaining)
	})

	t.Run("window keys expire", func(t *testing.T) {
		_, _, err := store.Allow(ctx, "USR_3:auth", 1, time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, mr.Keys())

		mr.FastForward(2 * time.Minute)

		for _, k := range mr.Keys() {
			assert.NotContains(t, k, "USR_3:auth")
		}
	})
}
