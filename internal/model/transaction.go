package model

import "time"

// RawTransaction is a provider-shaped transaction object exactly as returned
// by a bank API, before normalization. The pipeline treats it as opaque;
// only the normalizer knows each provider's field paths.
type RawTransaction = map[string]any

// Transaction is the canonical, provider-independent record all pipeline
// stages operate on.
//
// Sign convention: Amount >= 0 is income/inflow, Amount < 0 is an expense.
// Every downstream aggregate depends on this convention.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Merchant    string    `json:"merchant,omitempty"`
	Type        string    `json:"type,omitempty"`
	Category    string    `json:"category,omitempty"`
	Source      string    `json:"source"`

	// Enrichment-derived fields. Set once by the enrichment pass,
	// never overwritten afterwards.
	Month       int      `json:"month,omitempty"`
	Year        int      `json:"year,omitempty"`
	DayOfWeek   string   `json:"day_of_week,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsRecurring bool     `json:"is_recurring"`
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// MonthKey returns the transaction's calendar month as "YYYY-MM",
// the key used by the monthly aggregation series.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// RecordError describes a single raw record the normalizer had to drop.
// Per-record failures never abort the batch.
type RecordError struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
