// Package bankauth handles authentication against the bank provider APIs:
// exchanging a long-lived API key for a short-lived access token and
// re-authenticating when the token expires.
package bankauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
)

// TokenSource yields a valid access token for a provider, refreshing as needed.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Authenticator implements TokenSource for the bearer-token providers.
// It caches the access token and re-authenticates once the cached token's
// lifetime has elapsed. Safe for concurrent use.
type Authenticator struct {
	provider      string
	apiURL        string
	apiKey        string
	authPath      string
	tokenLifetime time.Duration

	httpClient *http.Client
	now        func() time.Time

	mu          sync.Mutex
	accessToken string
	expiry      time.Time
}

// New creates the authenticator for a provider tag.
func New(provider, apiURL, apiKey string) (*Authenticator, error) {
	switch provider {
	case "wise":
		return newAuthenticator(provider, apiURL, apiKey, "/oauth/token", time.Hour), nil
	case "revolut":
		// Revolut business tokens expire after 30 minutes.
		return newAuthenticator(provider, apiURL, apiKey, "/auth/token", 30*time.Minute), nil
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, provider)
	}
}

func newAuthenticator(provider, apiURL, apiKey, authPath string, lifetime time.Duration) *Authenticator {
	return &Authenticator{
		provider:      provider,
		apiURL:        apiURL,
		apiKey:        apiKey,
		authPath:      authPath,
		tokenLifetime: lifetime,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		now:           time.Now,
	}
}

// Token returns a valid access token, authenticating on first use and
// re-authenticating after expiry.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && a.now().Before(a.expiry) {
		return a.accessToken, nil
	}
	return a.authenticate(ctx)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (a *Authenticator) authenticate(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL+a.authPath, nil)
	if err != nil {
		return "", fmt.Errorf("%s auth: %w", a.provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperrors.ErrAuthenticationFailed, a.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned status %d",
			apperrors.ErrAuthenticationFailed, a.provider, resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %s: decoding token response: %v",
			apperrors.ErrAuthenticationFailed, a.provider, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: %s returned an empty access token",
			apperrors.ErrAuthenticationFailed, a.provider)
	}

	a.accessToken = body.AccessToken
	a.expiry = a.now().Add(a.tokenLifetime)
	return a.accessToken, nil
}
