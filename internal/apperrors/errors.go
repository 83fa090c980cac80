package apperrors

import "errors"

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnsupportedProvider indicates that no normalization mapping or API
	// client is registered for the requested provider tag.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidRule indicates that a category rule is malformed, typically
	// a merchant pattern that does not compile as a regular expression.
	// Rule defects are configuration errors and fail at engine construction,
	// never per transaction.
	ErrInvalidRule = errors.New("invalid category rule")

	// ErrUnsupportedFormat indicates that a report was requested in a format
	// the report writer does not produce.
	ErrUnsupportedFormat = errors.New("unsupported report format")
)

// Provider communication errors represent failures talking to a bank API.
// These errors indicate an upstream problem, not a defect in the pipeline.
var (
	// ErrAuthenticationFailed indicates that the provider rejected our
	// credentials or a token refresh did not succeed.
	ErrAuthenticationFailed = errors.New("provider authentication failed")

	// ErrProviderUnavailable indicates that a provider API request failed or
	// returned an unexpected status.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	// ErrFailedToFetchTransactions indicates a provider transaction fetch failed.
	ErrFailedToFetchTransactions = errors.New("failed to fetch transactions")

	// ErrFailedToWriteReport indicates a report file could not be written.
	ErrFailedToWriteReport = errors.New("failed to write report")
)
