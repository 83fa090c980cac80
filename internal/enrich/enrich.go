// Package enrich derives calendar fields, tags, and the recurring-payment
// flag for each transaction. Every derivation is a pure function of the
// record's own fields; nothing here looks across records.
package enrich

import (
	"strings"

	"github.com/jdevries/Banking-Insights-Backend/internal/categorize"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// recurringIndicators is the vocabulary that marks a description as a likely
// recurring payment. This is a textual heuristic, not cross-transaction
// duplicate detection; that lives in the insight detector.
var recurringIndicators = []string{
	"subscription",
	"monthly",
	"recurring",
	"payment",
	"bill",
	"auto-pay",
}

// Amount thresholds for value tags.
const (
	highValueThreshold = 1000
	lowValueThreshold  = 10
)

// Enrich returns a new slice with the enrichment fields populated on every
// transaction. Fields already derived are computed the same way again, so
// the pass is idempotent.
func Enrich(transactions []model.Transaction) []model.Transaction {
	result := make([]model.Transaction, len(transactions))
	for i, tx := range transactions {
		result[i] = enrichRecord(tx)
	}
	return result
}

func enrichRecord(tx model.Transaction) model.Transaction {
	tx.Month = int(tx.Date.Month())
	tx.Year = tx.Date.Year()
	tx.DayOfWeek = tx.Date.Weekday().String()
	tx.IsRecurring = IsRecurring(tx.Description)
	tx.Tags = Tags(tx)
	return tx
}

// IsRecurring reports whether the description contains any known
// recurring-payment indicator, case-insensitively.
func IsRecurring(description string) bool {
	lowered := strings.ToLower(description)
	for _, indicator := range recurringIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}

// Tags builds the tag set for a transaction in stable order: value tags
// first, then the recurring tag, then the lower-cased category when it is
// not the fallback.
func Tags(tx model.Transaction) []string {
	tags := []string{}

	if tx.Amount > highValueThreshold {
		tags = append(tags, "high_value")
	} else if tx.Amount < lowValueThreshold {
		tags = append(tags, "low_value")
	}

	if IsRecurring(tx.Description) {
		tags = append(tags, "recurring")
	}

	if tx.Category != "" && tx.Category != categorize.FallbackCategory {
		tags = append(tags, strings.ToLower(tx.Category))
	}

	return tags
}
