package model

// Insight priority levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Insight types produced by the detector.
const (
	InsightDuplicateSubscriptions = "duplicate_subscriptions"
	InsightHighFees               = "high_fees"
	InsightSpendingIncrease       = "spending_increase"
	InsightRecurringCharges       = "recurring_charges"
)

// CostInsight is one structured cost-saving observation derived from the
// enriched batch. A batch may yield zero or many.
type CostInsight struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Impact         float64 `json:"impact"`
	Recommendation string  `json:"recommendation"`
	Priority       string  `json:"priority"`
}

// Analysis bundles everything one pipeline invocation produces for a batch:
// the processed transactions, batch aggregates, per-category breakdown,
// detected insights, and any per-record normalization errors.
type Analysis struct {
	Transactions []Transaction   `json:"transactions"`
	Summary      SummaryStats    `json:"summary"`
	Categories   []CategoryStats `json:"categories"`
	Insights     []CostInsight   `json:"insights"`
	Errors       []RecordError   `json:"errors,omitempty"`
}
