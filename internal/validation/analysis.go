package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/request"
)

// ValidFormats contains the allowed report format values.
var ValidFormats = map[string]bool{
	"json": true, "csv": true,
}

// ValidateDateRange parses start and end (YYYY-MM-DD) and checks that start
// is not after end. Both values are required.
//
// Returns the parsed range, or a validation Error with field-specific
// messages if validation fails.
func ValidateDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	errors := make(map[string]string)

	var start, end time.Time
	var err error

	if strings.TrimSpace(startDate) == "" {
		errors["startDate"] = "start date is required"
	} else if start, err = time.Parse("2006-01-02", startDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if strings.TrimSpace(endDate) == "" {
		errors["endDate"] = "end date is required"
	} else if end, err = time.Parse("2006-01-02", endDate); err != nil {
		errors["endDate"] = err.Error()
	}

	if len(errors) == 0 && start.After(end) {
		errors["startDate"] = "start date must not be after end date"
	}

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, &Error{Fields: errors}
	}

	return start, end, nil
}

// ValidateAnalyzeBatch validates a posted raw batch.
//
// Required fields:
//   - provider: must be non-empty (the handler checks it is registered)
//   - transactions: must be present (an empty batch is allowed)
func ValidateAnalyzeBatch(req request.AnalyzeBatchRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Provider) == "" {
		errors["provider"] = "provider is required"
	}
	if req.Transactions == nil {
		errors["transactions"] = "transactions is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateExportReport validates a report export request: a valid date range
// and at least one supported format.
func ValidateExportReport(req request.ExportReportRequest) error {
	errors := make(map[string]string)

	if _, _, err := ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		if verr, ok := err.(*Error); ok {
			for field, msg := range verr.Fields {
				errors[field] = msg
			}
		}
	}

	if len(req.Formats) == 0 {
		errors["formats"] = "at least one format is required"
	}
	for _, format := range req.Formats {
		if !ValidFormats[format] {
			errors["formats"] = fmt.Sprintf("invalid format: %s", format)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
