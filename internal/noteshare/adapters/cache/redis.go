// Package cache provides the Redis-backed cache of resolved auth profiles.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/logger"
)

// Log and error messages.
const (
	ErrorFailedToGet    = "failed to get profile from redis"
	ErrorFailedToSet    = "failed to set profile in redis"
	ErrorFailedToDecode = "failed to decode cached profile"
	ErrorFailedToClose  = "failed to close redis connection"
)

const keyPrefix = "auth:profile:"

// Options holds the Redis connection settings for the profile cache.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// ProfileCache implements services.ProfileCache over Redis. All cache
// failures are logged and treated as misses; the cache is never a reason
// for a request to fail.
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a Redis-backed profile cache and verifies the
// connection.
func NewProfileCache(ctx context.Context, opts Options) (*ProfileCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ProfileCache{client: client}, nil
}

// Get returns the cached profile for the token, if present.
func (c *ProfileCache) Get(ctx context.Context, accessToken string) (*entities.AuthUserProfile, bool) {
	log := logger.Log(ctx).With(zap.String("cache", "profile"))

	value, err := c.client.Get(ctx, cacheKey(accessToken)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		}
		return nil, false
	}

	var profile entities.AuthUserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		log.Error(ctx, ErrorFailedToDecode, zap.Error(err))
		return nil, false
	}
	return &profile, true
}

// Set stores the profile for the token with the given TTL.
func (c *ProfileCache) Set(ctx context.Context, accessToken string, profile *entities.AuthUserProfile, ttl time.Duration) {
	log := logger.Log(ctx).With(zap.String("cache", "profile"))

	encoded, err := json.Marshal(profile)
	if err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, cacheKey(accessToken), encoded, ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
	}
}

// Close closes the Redis connection.
func (c *ProfileCache) Close(ctx context.Context) {
	if err := c.client.Close(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToClose, zap.Error(err))
	}
}

// cacheKey hashes the token so raw credentials never reach Redis.
func cacheKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return keyPrefix + hex.EncodeToString(sum[:])
}

var _ services.ProfileCache = (*ProfileCache)(nil)
