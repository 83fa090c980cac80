package model

// SummaryStats is a read-only snapshot of batch-level aggregates.
// All numeric fields are zero and all slices are empty (never nil) for an
// empty batch.
type SummaryStats struct {
	TotalIncome          float64          `json:"total_income"`
	TotalExpenses        float64          `json:"total_expenses"`
	NetCashflow          float64          `json:"net_cashflow"`
	AvgDailyExpense      float64          `json:"avg_daily_expense"`
	TopExpenseCategories []CategoryAmount `json:"top_expense_categories"`
	TopIncomeCategories  []CategoryAmount `json:"top_income_categories"`
	Monthly              []MonthlySummary `json:"monthly_summary"`
}

// CategoryAmount is one entry of a top-N category ranking.
// Amount is always the absolute summed amount for the category.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlySummary holds income, expenses, and net cashflow for a single
// calendar month, keyed "YYYY-MM".
type MonthlySummary struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// CategoryStats holds per-category reporting figures across the whole batch:
// signed sum, transaction count, mean amount, and the category's share of
// total spend in percent.
type CategoryStats struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Percentage float64 `json:"percentage"`
}
