package testutil

import (
	"context"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// MockProviderClient is a mock implementation of bankapi.Client for testing.
// It returns predefined raw records instead of calling a bank API.
type MockProviderClient struct {
	// Tag is the provider tag the mock reports.
	Tag string
	// Raws is the raw batch to return from FetchTransactions.
	Raws []model.RawTransaction
	// Err is the error to return from FetchTransactions.
	Err error
	// FetchCount tracks how many times FetchTransactions was called.
	FetchCount int
}

// NewMockProviderClient creates a mock client for the given provider tag.
func NewMockProviderClient(tag string) *MockProviderClient {
	return &MockProviderClient{Tag: tag}
}

// Provider returns the configured provider tag.
func (m *MockProviderClient) Provider() string { return m.Tag }

// FetchTransactions returns the configured raw batch and error.
func (m *MockProviderClient) FetchTransactions(_ context.Context, _, _ time.Time) ([]model.RawTransaction, error) {
	m.FetchCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Raws, nil
}

// WithRaws configures the mock to return the given raw records.
func (m *MockProviderClient) WithRaws(raws ...model.RawTransaction) *MockProviderClient {
	m.Raws = raws
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockProviderClient) WithError(err error) *MockProviderClient {
	m.Err = err
	return m
}
