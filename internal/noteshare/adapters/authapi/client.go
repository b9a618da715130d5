// Package authapi provides the HTTP client for the external auth provider.
package authapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/logger"
)

// Log and error messages.
const (
	LogFetchingProfile = "fetching auth user profile"

	ErrBuildRequest    = "failed to build userinfo request"
	ErrDoRequest       = "failed to call userinfo endpoint"
	ErrUnexpectedState = "unexpected userinfo response status"
	ErrDecodeProfile   = "failed to decode userinfo response"
)

const defaultTimeout = 10 * time.Second

// Client resolves access tokens against the provider's userinfo endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new auth provider client.
func NewClient(baseURL string) services.AuthClient {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FetchAuthUser resolves the access token to the external profile.
func (c *Client) FetchAuthUser(ctx context.Context, accessToken string) (*entities.AuthUserProfile, error) {
	log := logger.Log(ctx).With(zap.String("client", "authapi"))
	log.Debug(ctx, LogFetchingProfile)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, ErrDoRequest, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrDoRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Error(ctx, ErrUnexpectedState, zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s: %d", ErrUnexpectedState, resp.StatusCode)
	}

	var profile entities.AuthUserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		log.Error(ctx, ErrDecodeProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrDecodeProfile, err)
	}

	return &profile, nil
}
