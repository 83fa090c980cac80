package validation

import (
	"strings"
	"testing"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/request"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

func TestValidateDateRange(t *testing.T) {
	t.Run("parses a valid range", func(t *testing.T) {
		start, end, err := ValidateDateRange("2024-01-01", "2024-03-31")
		if err != nil {
			t.Fatalf("Expected valid range, got %v", err)
		}
		if start.After(end) {
			t.Error("Expected start before end")
		}
		if start.Year() != 2024 || start.Month() != 1 || start.Day() != 1 {
			t.Errorf("Unexpected start date: %v", start)
		}
	})

	t.Run("accepts start equal to end", func(t *testing.T) {
		if _, _, err := ValidateDateRange("2024-01-01", "2024-01-01"); err != nil {
			t.Errorf("Expected single-day range to be valid, got %v", err)
		}
	})

	t.Run("requires both dates", func(t *testing.T) {
		_, _, err := ValidateDateRange("", "")
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if verr.Fields["startDate"] == "" || verr.Fields["endDate"] == "" {
			t.Errorf("Expected messages for both fields, got %v", verr.Fields)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, _, err := ValidateDateRange("01/15/2024", "2024-03-31")
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if verr.Fields["startDate"] == "" {
			t.Error("Expected a message for startDate")
		}
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, _, err := ValidateDateRange("2024-03-31", "2024-01-01")
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if !strings.Contains(verr.Fields["startDate"], "must not be after") {
			t.Errorf("Expected ordering message, got %v", verr.Fields)
		}
	})
}

func TestValidateAnalyzeBatch(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		req := request.AnalyzeBatchRequest{
			Provider:     "wise",
			Transactions: []model.RawTransaction{},
		}
		if err := ValidateAnalyzeBatch(req); err != nil {
			t.Errorf("Expected valid request, got %v", err)
		}
	})

	t.Run("requires a provider", func(t *testing.T) {
		req := request.AnalyzeBatchRequest{Transactions: []model.RawTransaction{}}
		err := ValidateAnalyzeBatch(req)
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if verr.Fields["provider"] == "" {
			t.Error("Expected a message for provider")
		}
	})

	t.Run("requires the transactions field", func(t *testing.T) {
		req := request.AnalyzeBatchRequest{Provider: "wise"}
		err := ValidateAnalyzeBatch(req)
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if verr.Fields["transactions"] == "" {
			t.Error("Expected a message for transactions")
		}
	})
}

func TestValidateExportReport(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		req := request.ExportReportRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-03-31",
			Formats:   []string{"json", "csv"},
		}
		if err := ValidateExportReport(req); err != nil {
			t.Errorf("Expected valid request, got %v", err)
		}
	})

	t.Run("requires at least one format", func(t *testing.T) {
		req := request.ExportReportRequest{StartDate: "2024-01-01", EndDate: "2024-03-31"}
		err := ValidateExportReport(req)
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if verr.Fields["formats"] == "" {
			t.Error("Expected a message for formats")
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		req := request.ExportReportRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-03-31",
			Formats:   []string{"xml"},
		}
		err := ValidateExportReport(req)
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		if !strings.Contains(verr.Fields["formats"], "xml") {
			t.Errorf("Expected the invalid format to be named, got %v", verr.Fields)
		}
	})

	t.Run("combines date and format errors", func(t *testing.T) {
		req := request.ExportReportRequest{}
		err := ValidateExportReport(req)
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected validation Error, got %v", err)
		}
		for _, field := range []string{"startDate", "endDate", "formats"} {
			if verr.Fields[field] == "" {
				t.Errorf("Expected a message for %s, got %v", field, verr.Fields)
			}
		}
	})
}

func TestError(t *testing.T) {
	t.Run("joins field messages deterministically", func(t *testing.T) {
		err := &Error{Fields: map[string]string{
			"b": "second",
			"a": "first",
		}}

		if err.Error() != "a: first; b: second" {
			t.Errorf("Unexpected message: %s", err.Error())
		}
	})
}
