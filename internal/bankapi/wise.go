package bankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/bankauth"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// WiseClient fetches statement transactions from the Wise API.
// Wise scopes everything to a profile: the client resolves the profile once,
// lists its borderless accounts, and downloads each account's statement for
// the requested interval.
type WiseClient struct {
	apiURL     string
	auth       bankauth.TokenSource
	httpClient *http.Client

	profileID string
}

// NewWiseClient creates a Wise API client.
func NewWiseClient(apiURL string, auth bankauth.TokenSource) *WiseClient {
	return &WiseClient{
		apiURL:     apiURL,
		auth:       auth,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Provider returns the provider tag.
func (c *WiseClient) Provider() string { return "wise" }

type wiseProfile struct {
	ID json.Number `json:"id"`
}

type wiseAccount struct {
	ID json.Number `json:"id"`
}

type wiseStatement struct {
	Transactions []model.RawTransaction `json:"transactions"`
}

// FetchTransactions downloads all statement lines across the profile's
// accounts for the given interval.
func (c *WiseClient) FetchTransactions(ctx context.Context, start, end time.Time) ([]model.RawTransaction, error) {
	profileID, err := c.getProfileID(ctx)
	if err != nil {
		return nil, err
	}

	accountsURL := fmt.Sprintf("%s/profiles/%s/borderless-accounts", c.apiURL, profileID)
	resp, err := authedRequest(ctx, c.httpClient, c.auth, accountsURL)
	if err != nil {
		return nil, err
	}
	var accounts []wiseAccount
	err = json.NewDecoder(resp.Body).Decode(&accounts)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("wise: decoding accounts: %w", err)
	}

	params := url.Values{}
	params.Set("intervalStart", start.Format(time.RFC3339))
	params.Set("intervalEnd", end.Format(time.RFC3339))

	all := []model.RawTransaction{}
	for _, account := range accounts {
		statementURL := fmt.Sprintf("%s/profiles/%s/borderless-accounts/%s/statement.json?%s",
			c.apiURL, profileID, account.ID.String(), params.Encode())
		resp, err := authedRequest(ctx, c.httpClient, c.auth, statementURL)
		if err != nil {
			return nil, err
		}
		var statement wiseStatement
		err = json.NewDecoder(resp.Body).Decode(&statement)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("wise: decoding statement for account %s: %w", account.ID, err)
		}
		all = append(all, statement.Transactions...)
	}

	return all, nil
}

// getProfileID resolves and caches the first profile on the account.
func (c *WiseClient) getProfileID(ctx context.Context) (string, error) {
	if c.profileID != "" {
		return c.profileID, nil
	}

	resp, err := authedRequest(ctx, c.httpClient, c.auth, c.apiURL+"/profiles")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var profiles []wiseProfile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return "", fmt.Errorf("wise: decoding profiles: %w", err)
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("wise: no profiles available")
	}

	c.profileID = profiles[0].ID.String()
	return c.profileID, nil
}
