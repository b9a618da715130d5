// Package services defines interfaces for external collaborators.
package services

import (
	"context"
	"errors"
	"time"

	"noteshare/internal/noteshare/domain/entities"
)

// Token validation errors.
var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrExpiredToken = errors.New("access token has expired")
)

// AuthClient resolves an access token to an external auth profile.
type AuthClient interface {
	FetchAuthUser(ctx context.Context, accessToken string) (*entities.AuthUserProfile, error)
}

// TokenService validates an access token and returns the external auth
// subject it was issued for.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}

// ProfileCache caches resolved auth profiles keyed by access token.
// Implementations must treat cache failures as misses.
type ProfileCache interface {
	Get(ctx context.Context, accessToken string) (*entities.AuthUserProfile, bool)
	Set(ctx context.Context, accessToken string, profile *entities.AuthUserProfile, ttl time.Duration)
}
