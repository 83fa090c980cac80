// Package bankapi provides HTTP clients for the supported bank provider
// APIs. Clients fetch raw, provider-shaped transaction objects; all
// normalization happens downstream in the pipeline.
package bankapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/bankauth"
	"github.com/jdevries/Banking-Insights-Backend/internal/config"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// Client fetches raw transactions from one provider for a date range.
type Client interface {
	Provider() string
	FetchTransactions(ctx context.Context, start, end time.Time) ([]model.RawTransaction, error)
}

// NewClient creates the API client for a provider tag.
func NewClient(provider string, cfg config.ProviderConfig) (Client, error) {
	auth, err := bankauth.New(provider, cfg.APIURL, cfg.APIToken)
	if err != nil {
		return nil, err
	}

	switch provider {
	case "wise":
		return NewWiseClient(cfg.APIURL, auth), nil
	case "revolut":
		return NewRevolutClient(cfg.APIURL, auth), nil
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, provider)
	}
}

// NewRegistry builds clients for every configured provider, keyed by tag.
func NewRegistry(providers map[string]config.ProviderConfig) (map[string]Client, error) {
	registry := make(map[string]Client, len(providers))
	for tag, cfg := range providers {
		client, err := NewClient(tag, cfg)
		if err != nil {
			return nil, err
		}
		registry[tag] = client
	}
	return registry, nil
}

// authedRequest issues a GET with the provider's bearer token attached.
func authedRequest(ctx context.Context, httpClient *http.Client, auth bankauth.TokenSource, url string) (*http.Response, error) {
	token, err := auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned status %d",
			apperrors.ErrProviderUnavailable, url, resp.StatusCode)
	}
	return resp, nil
}
