package normalize_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
	"github.com/jdevries/Banking-Insights-Backend/internal/normalize"
	"github.com/jdevries/Banking-Insights-Backend/internal/testutil"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Run("normalizes wise statement lines", func(t *testing.T) {
		n := normalize.New()

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "2024-01-15T10:30:00Z", -45.50, "Grocery store"),
		}

		transactions, recordErrors, err := n.Normalize("wise", raws)
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(recordErrors) != 0 {
			t.Errorf("Expected no record errors, got %d", len(recordErrors))
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}

		tx := transactions[0]
		if tx.ID != "TX-1" {
			t.Errorf("Expected ID TX-1, got %s", tx.ID)
		}
		if tx.Amount != -45.50 {
			t.Errorf("Expected amount -45.50, got %f", tx.Amount)
		}
		if tx.Currency != "EUR" {
			t.Errorf("Expected currency EUR, got %s", tx.Currency)
		}
		if tx.Description != "Grocery store" {
			t.Errorf("Expected description 'Grocery store', got %s", tx.Description)
		}
		if tx.Merchant != "Test Merchant" {
			t.Errorf("Expected merchant 'Test Merchant', got %s", tx.Merchant)
		}
		if tx.Source != "wise" {
			t.Errorf("Expected source wise, got %s", tx.Source)
		}

		want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		if !tx.Date.Equal(want) {
			t.Errorf("Expected date %v, got %v", want, tx.Date)
		}
	})

	t.Run("normalizes revolut records including provider category", func(t *testing.T) {
		n := normalize.New()

		raw := testutil.RevolutRawTransaction("rev-1", "2024-02-01T08:00:00Z", -12.00, "Coffee")
		raw["category"] = "groceries"

		transactions, recordErrors, err := n.Normalize("revolut", []model.RawTransaction{raw})
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(recordErrors) != 0 {
			t.Errorf("Expected no record errors, got %d", len(recordErrors))
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}

		tx := transactions[0]
		if tx.Source != "revolut" {
			t.Errorf("Expected source revolut, got %s", tx.Source)
		}
		if tx.Category != "groceries" {
			t.Errorf("Expected provider category groceries, got %s", tx.Category)
		}
		if tx.Currency != "GBP" {
			t.Errorf("Expected currency GBP, got %s", tx.Currency)
		}
	})

	t.Run("returns error for unknown provider", func(t *testing.T) {
		n := normalize.New()

		_, _, err := n.Normalize("monzo", []model.RawTransaction{})
		if !errors.Is(err, apperrors.ErrUnsupportedProvider) {
			t.Errorf("Expected ErrUnsupportedProvider, got %v", err)
		}
	})

	t.Run("drops bad records without aborting the batch", func(t *testing.T) {
		n := normalize.New()

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "2024-01-15T10:30:00Z", -45.50, "Good record"),
			testutil.WiseRawTransaction("TX-2", "not-a-date", -10.00, "Bad date"),
			testutil.WiseRawTransaction("TX-3", "2024-01-17T10:30:00Z", -5.00, "Another good record"),
		}

		transactions, recordErrors, err := n.Normalize("wise", raws)
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("Expected 2 surviving transactions, got %d", len(transactions))
		}
		if len(recordErrors) != 1 {
			t.Fatalf("Expected 1 record error, got %d", len(recordErrors))
		}
		if recordErrors[0].Index != 1 {
			t.Errorf("Expected record error at index 1, got %d", recordErrors[0].Index)
		}
		if recordErrors[0].Field != "date" {
			t.Errorf("Expected record error on field date, got %s", recordErrors[0].Field)
		}
	})

	t.Run("reports unparseable amounts", func(t *testing.T) {
		n := normalize.New()

		raw := testutil.RevolutRawTransaction("rev-1", "2024-02-01T08:00:00Z", 0, "Bad amount")
		raw["amount"] = "twelve"

		transactions, recordErrors, err := n.Normalize("revolut", []model.RawTransaction{raw})
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("Expected 0 transactions, got %d", len(transactions))
		}
		if len(recordErrors) != 1 {
			t.Fatalf("Expected 1 record error, got %d", len(recordErrors))
		}
		if recordErrors[0].Field != "amount" {
			t.Errorf("Expected record error on field amount, got %s", recordErrors[0].Field)
		}
	})

	t.Run("accepts date-only values", func(t *testing.T) {
		n := normalize.New()

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "2024-03-05", 100.00, "Date only"),
		}

		transactions, _, err := n.Normalize("wise", raws)
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}

		want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		if !transactions[0].Date.Equal(want) {
			t.Errorf("Expected date %v, got %v", want, transactions[0].Date)
		}
	})

	t.Run("handles empty batch", func(t *testing.T) {
		n := normalize.New()

		transactions, recordErrors, err := n.Normalize("wise", []model.RawTransaction{})
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("Expected 0 transactions, got %d", len(transactions))
		}
		if recordErrors == nil {
			t.Error("Expected non-nil record error slice")
		}
	})
}

func TestNormalizer_Register(t *testing.T) {
	t.Run("registered mapping becomes usable", func(t *testing.T) {
		n := normalize.New()

		n.Register("custom", normalize.Mapping{
			ID:          []string{"ref"},
			Date:        []string{"when"},
			Amount:      []string{"total"},
			Currency:    []string{"ccy"},
			Description: []string{"memo"},
		})

		if !n.Supports("custom") {
			t.Fatal("Expected custom provider to be supported after Register")
		}

		transactions, _, err := n.Normalize("custom", []model.RawTransaction{
			{"ref": "c-1", "when": "2024-05-01", "total": -3.50, "ccy": "USD", "memo": "Custom record"},
		})
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}
		if transactions[0].Description != "Custom record" {
			t.Errorf("Expected description 'Custom record', got %s", transactions[0].Description)
		}
	})

	t.Run("builtin providers are registered", func(t *testing.T) {
		n := normalize.New()

		for _, provider := range []string{"wise", "revolut"} {
			if !n.Supports(provider) {
				t.Errorf("Expected builtin provider %s to be supported", provider)
			}
		}
		if n.Supports("monzo") {
			t.Error("Expected monzo to be unsupported")
		}
	})
}

func TestNormalizer_Denormalize(t *testing.T) {
	t.Run("round-trips a wise record", func(t *testing.T) {
		n := normalize.New()

		original := testutil.WiseRawTransaction("TX-9", "2024-06-01T00:00:00Z", -19.99, "Monthly subscription")

		transactions, _, err := n.Normalize("wise", []model.RawTransaction{original})
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}

		raw, err := n.Denormalize("wise", transactions[0])
		if err != nil {
			t.Fatalf("Denormalize failed: %v", err)
		}

		if raw["referenceNumber"] != "TX-9" {
			t.Errorf("Expected referenceNumber TX-9, got %v", raw["referenceNumber"])
		}
		if raw["date"] != "2024-06-01T00:00:00Z" {
			t.Errorf("Expected date 2024-06-01T00:00:00Z, got %v", raw["date"])
		}

		amount, ok := raw["amount"].(map[string]any)
		if !ok {
			t.Fatalf("Expected nested amount object, got %T", raw["amount"])
		}
		if amount["value"] != -19.99 {
			t.Errorf("Expected amount value -19.99, got %v", amount["value"])
		}
		if amount["currency"] != "EUR" {
			t.Errorf("Expected amount currency EUR, got %v", amount["currency"])
		}

		details, ok := raw["details"].(map[string]any)
		if !ok {
			t.Fatalf("Expected nested details object, got %T", raw["details"])
		}
		if details["description"] != "Monthly subscription" {
			t.Errorf("Expected description 'Monthly subscription', got %v", details["description"])
		}
	})

	t.Run("returns error for unknown provider", func(t *testing.T) {
		n := normalize.New()

		_, err := n.Denormalize("monzo", testutil.NewTransaction().Build())
		if !errors.Is(err, apperrors.ErrUnsupportedProvider) {
			t.Errorf("Expected ErrUnsupportedProvider, got %v", err)
		}
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		n := normalize.New()

		tx := testutil.NewTransaction().Build()
		tx.Merchant = ""
		tx.Type = ""

		raw, err := n.Denormalize("revolut", tx)
		if err != nil {
			t.Fatalf("Denormalize failed: %v", err)
		}
		if _, ok := raw["merchant"]; ok {
			t.Error("Expected merchant to be omitted for empty value")
		}
		if _, ok := raw["type"]; ok {
			t.Error("Expected type to be omitted for empty value")
		}
	})
}
