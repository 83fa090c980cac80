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

// revolutPageSize caps the number of transactions requested per account.
const revolutPageSize = 1000

// RevolutClient fetches transactions from the Revolut Business API.
type RevolutClient struct {
	apiURL     string
	auth       bankauth.TokenSource
	httpClient *http.Client
}

// NewRevolutClient creates a Revolut API client.
func NewRevolutClient(apiURL string, auth bankauth.TokenSource) *RevolutClient {
	return &RevolutClient{
		apiURL:     apiURL,
		auth:       auth,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Provider returns the provider tag.
func (c *RevolutClient) Provider() string { return "revolut" }

type revolutAccount struct {
	ID string `json:"id"`
}

// FetchTransactions lists the business accounts and fetches each account's
// transactions for the given range.
func (c *RevolutClient) FetchTransactions(ctx context.Context, start, end time.Time) ([]model.RawTransaction, error) {
	resp, err := authedRequest(ctx, c.httpClient, c.auth, c.apiURL+"/accounts")
	if err != nil {
		return nil, err
	}
	var accounts []revolutAccount
	err = json.NewDecoder(resp.Body).Decode(&accounts)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("revolut: decoding accounts: %w", err)
	}

	all := []model.RawTransaction{}
	for _, account := range accounts {
		params := url.Values{}
		params.Set("from", start.Format(time.RFC3339))
		params.Set("to", end.Format(time.RFC3339))
		params.Set("count", fmt.Sprintf("%d", revolutPageSize))
		params.Set("account", account.ID)

		resp, err := authedRequest(ctx, c.httpClient, c.auth,
			c.apiURL+"/transactions?"+params.Encode())
		if err != nil {
			return nil, err
		}
		var transactions []model.RawTransaction
		err = json.NewDecoder(resp.Body).Decode(&transactions)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("revolut: decoding transactions for account %s: %w", account.ID, err)
		}
		all = append(all, transactions...)
	}

	return all, nil
}
