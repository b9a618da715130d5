package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteshare/internal/noteshare/adapters/cache"
	"noteshare/internal/noteshare/domain/entities"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *cache.ProfileCache) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := cache.NewProfileCache(context.Background(), cache.Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(context.Background()) })
	return mr, c
}

func TestProfileCache(t *testing.T) {
	ctx := context.Background()
	profile := &entities.AuthUserProfile{
		Sub:     "auth0|abc",
		Email:   "a@b.c",
		Name:    "Alice",
		Picture: "https://pic",
	}

	t.Run("set then get round-trips the profile", func(t *testing.T) {
		_, c := newTestCache(t)

		c.Set(ctx, "tok-123", profile, time.Minute)
		got, ok := c.Get(ctx, "tok-123")
		require.True(t, ok)
		assert.Equal(t, profile, got)
	})

	t.Run("unknown token is a miss", func(t *testing.T) {
		_, c := newTestCache(t)

		got, ok := c.Get(ctx, "never-seen")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		mr, c := newTestCache(t)

		c.Set(ctx, "tok-123", profile, time.Minute)
		mr.FastForward(2 * time.Minute)

		_, ok := c.Get(ctx, "tok-123")
		assert.False(t, ok)
	})

	t.Run("raw tokens never appear as keys", func(t *testing.T) {
		mr, c := newTestCache(t)

		c.Set(ctx, "tok-123", profile, time.Minute)
		for _, key := range mr.Keys() {
			assert.NotContains(t, key, "tok-123")
		}
	})

	t.Run("connection failure surfaces on construction", func(t *testing.T) {
		_, err := cache.NewProfileCache(ctx, cache.Options{Addr: "127.0.0.1:1"})
		require.Error(t, err)
	})
}
