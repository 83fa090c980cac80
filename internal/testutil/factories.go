package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test
// transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build()
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithAmount(-14.99).
//	    WithDescription("Netflix Monthly Subscription").
//	    WithCategory("Subscriptions").
//	    Build()
type TransactionBuilder struct {
	tx model.Transaction
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		tx: model.Transaction{
			ID:          uuid.NewString(),
			Date:        time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			Amount:      -25.00,
			Currency:    "EUR",
			Description: "Test transaction",
			Source:      "wise",
		},
	}
}

// WithDate sets a custom date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.tx.Date = date
	return b
}

// OnDay sets the date from a YYYY-MM-DD string; invalid input keeps the default.
func (b *TransactionBuilder) OnDay(day string) *TransactionBuilder {
	if date, err := time.Parse("2006-01-02", day); err == nil {
		b.tx.Date = date
	}
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.tx.Amount = amount
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.tx.Description = description
	return b
}

// WithMerchant sets a custom merchant.
func (b *TransactionBuilder) WithMerchant(merchant string) *TransactionBuilder {
	b.tx.Merchant = merchant
	return b
}

// WithCategory sets a custom category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.tx.Category = category
	return b
}

// WithSource sets a custom provider tag.
func (b *TransactionBuilder) WithSource(source string) *TransactionBuilder {
	b.tx.Source = source
	return b
}

// Build returns the constructed transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.tx
}

// WiseRawTransaction returns a raw record in the Wise statement shape.
func WiseRawTransaction(reference, date string, amount float64, description string) model.RawTransaction {
	return model.RawTransaction{
		"referenceNumber": reference,
		"date":            date,
		"amount": map[string]any{
			"value":    amount,
			"currency": "EUR",
		},
		"details": map[string]any{
			"description": description,
			"type":        "CARD",
			"merchant": map[string]any{
				"name": "Test Merchant",
			},
		},
	}
}

// RevolutRawTransaction returns a raw record in the Revolut shape.
func RevolutRawTransaction(id, createdAt string, amount float64, description string) model.RawTransaction {
	return model.RawTransaction{
		"id":          id,
		"created_at":  createdAt,
		"amount":      amount,
		"currency":    "GBP",
		"description": description,
		"type":        "card_payment",
		"merchant": map[string]any{
			"name": "Test Merchant",
		},
	}
}
