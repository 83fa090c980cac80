package service_test

import (
	"errors"
	"testing"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
	"github.com/jdevries/Banking-Insights-Backend/internal/testutil"
)

func TestAnalysisService_Process(t *testing.T) {
	t.Run("runs normalization, categorization, and enrichment", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "2024-03-15T12:00:00Z", -9.99, "Netflix monthly subscription"),
		}

		transactions, recordErrors, err := svc.Process("wise", raws)
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if len(recordErrors) != 0 {
			t.Errorf("Expected no record errors, got %d", len(recordErrors))
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}

		tx := transactions[0]
		if tx.Category != "Subscriptions" {
			t.Errorf("Expected Subscriptions, got %s", tx.Category)
		}
		if tx.Month != 3 || tx.Year != 2024 {
			t.Errorf("Expected enrichment fields set, got month %d year %d", tx.Month, tx.Year)
		}
		if !tx.IsRecurring {
			t.Error("Expected transaction to be flagged recurring")
		}
	})

	t.Run("propagates unsupported provider", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		_, _, err := svc.Process("monzo", []model.RawTransaction{})
		if !errors.Is(err, apperrors.ErrUnsupportedProvider) {
			t.Errorf("Expected ErrUnsupportedProvider, got %v", err)
		}
	})

	t.Run("passes dropped records through", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "bad-date", -5, "Broken"),
			testutil.WiseRawTransaction("TX-2", "2024-03-15T12:00:00Z", -5, "Fine"),
		}

		transactions, recordErrors, err := svc.Process("wise", raws)
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if len(transactions) != 1 {
			t.Errorf("Expected 1 transaction, got %d", len(transactions))
		}
		if len(recordErrors) != 1 {
			t.Errorf("Expected 1 record error, got %d", len(recordErrors))
		}
	})
}

func TestAnalysisService_Analyze(t *testing.T) {
	t.Run("bundles summary, categories, and insights", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		transactions := []model.Transaction{
			testutil.NewTransaction().OnDay("2024-01-10").WithAmount(2000).WithCategory("Business").Build(),
			testutil.NewTransaction().OnDay("2024-01-15").WithAmount(-50).WithCategory("Food & Dining").Build(),
		}

		analysis := svc.Analyze(transactions)

		if len(analysis.Transactions) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(analysis.Transactions))
		}
		if analysis.Summary.TotalIncome != 2000 {
			t.Errorf("Expected income 2000, got %f", analysis.Summary.TotalIncome)
		}
		if len(analysis.Categories) != 2 {
			t.Errorf("Expected 2 category entries, got %d", len(analysis.Categories))
		}
		if analysis.Insights == nil {
			t.Error("Expected non-nil insights")
		}
	})

	t.Run("empty batch yields zero-valued analysis", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		analysis := svc.Analyze([]model.Transaction{})

		if analysis.Summary.NetCashflow != 0 {
			t.Errorf("Expected zero net cashflow, got %f", analysis.Summary.NetCashflow)
		}
		if len(analysis.Categories) != 0 || len(analysis.Insights) != 0 {
			t.Errorf("Expected empty collections, got %+v", analysis)
		}
	})
}

func TestAnalysisService_ProcessAndAnalyze(t *testing.T) {
	t.Run("carries record errors into the analysis", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		raws := []model.RawTransaction{
			testutil.WiseRawTransaction("TX-1", "2024-03-15T12:00:00Z", -45.50, "Grocery store"),
			testutil.WiseRawTransaction("TX-2", "bad-date", -5, "Broken"),
		}

		analysis, err := svc.ProcessAndAnalyze("wise", raws)
		if err != nil {
			t.Fatalf("ProcessAndAnalyze failed: %v", err)
		}
		if len(analysis.Transactions) != 1 {
			t.Errorf("Expected 1 transaction, got %d", len(analysis.Transactions))
		}
		if len(analysis.Errors) != 1 {
			t.Errorf("Expected 1 record error, got %d", len(analysis.Errors))
		}
	})

	t.Run("returns error for unknown provider", func(t *testing.T) {
		svc := testutil.NewTestAnalysisService(t)

		_, err := svc.ProcessAndAnalyze("monzo", []model.RawTransaction{})
		if !errors.Is(err, apperrors.ErrUnsupportedProvider) {
			t.Errorf("Expected ErrUnsupportedProvider, got %v", err)
		}
	})
}
