// Package aggregate computes batch-level summary statistics from an enriched
// batch. All aggregates have explicit zero/empty defaults for empty batches;
// nothing here returns an error.
package aggregate

import (
	"math"
	"sort"

	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// TopCategoryCount is the N of the top-N category rankings.
const TopCategoryCount = 5

// Summarize computes the summary snapshot for a batch. An empty batch yields
// all-zero numeric fields and empty (non-nil) collections.
func Summarize(transactions []model.Transaction) model.SummaryStats {
	stats := model.SummaryStats{
		TopExpenseCategories: []model.CategoryAmount{},
		TopIncomeCategories:  []model.CategoryAmount{},
		Monthly:              []model.MonthlySummary{},
	}
	if len(transactions) == 0 {
		return stats
	}

	var income, expenses float64
	earliest, latest := transactions[0].Date, transactions[0].Date
	for _, tx := range transactions {
		if tx.Amount >= 0 {
			income += tx.Amount
		} else {
			expenses += -tx.Amount
		}
		if tx.Date.Before(earliest) {
			earliest = tx.Date
		}
		if tx.Date.After(latest) {
			latest = tx.Date
		}
	}

	stats.TotalIncome = income
	stats.TotalExpenses = expenses
	stats.NetCashflow = income - expenses

	// Guard against single-day batches: never divide by less than one day.
	days := int(latest.Sub(earliest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	stats.AvgDailyExpense = expenses / float64(days)

	stats.TopExpenseCategories = topCategories(transactions, true)
	stats.TopIncomeCategories = topCategories(transactions, false)
	stats.Monthly = monthlySummaries(transactions)

	return stats
}

// topCategories ranks categories by absolute summed amount, descending.
// Ties are broken by first-seen input order so results are stable.
func topCategories(transactions []model.Transaction, expense bool) []model.CategoryAmount {
	sums := map[string]float64{}
	firstSeen := map[string]int{}
	order := 0

	for _, tx := range transactions {
		if expense != tx.IsExpense() {
			continue
		}
		if _, ok := sums[tx.Category]; !ok {
			firstSeen[tx.Category] = order
			order++
		}
		sums[tx.Category] += math.Abs(tx.Amount)
	}

	ranked := make([]model.CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		ranked = append(ranked, model.CategoryAmount{Category: category, Amount: amount})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return firstSeen[ranked[i].Category] < firstSeen[ranked[j].Category]
	})

	if len(ranked) > TopCategoryCount {
		ranked = ranked[:TopCategoryCount]
	}
	return ranked
}

// monthlySummaries computes one entry per distinct month present in the
// batch, ordered chronologically. Month income/expenses/net use the same
// formulas as the batch totals, scoped to the month.
func monthlySummaries(transactions []model.Transaction) []model.MonthlySummary {
	byMonth := map[string]*model.MonthlySummary{}
	for _, tx := range transactions {
		key := tx.MonthKey()
		entry, ok := byMonth[key]
		if !ok {
			entry = &model.MonthlySummary{Month: key}
			byMonth[key] = entry
		}
		if tx.Amount >= 0 {
			entry.Income += tx.Amount
		} else {
			entry.Expenses += -tx.Amount
		}
	}

	months := make([]model.MonthlySummary, 0, len(byMonth))
	for _, entry := range byMonth {
		entry.Net = entry.Income - entry.Expenses
		months = append(months, *entry)
	}
	// "YYYY-MM" keys sort chronologically as strings.
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// CategoryBreakdown computes per-category reporting stats: signed sum, count,
// mean, and the category's share of total spend. Categories are ordered by
// absolute total, descending, ties by first-seen input order.
func CategoryBreakdown(transactions []model.Transaction) []model.CategoryStats {
	if len(transactions) == 0 {
		return []model.CategoryStats{}
	}

	totals := map[string]*model.CategoryStats{}
	firstSeen := map[string]int{}
	order := 0
	var totalSpend float64

	for _, tx := range transactions {
		entry, ok := totals[tx.Category]
		if !ok {
			entry = &model.CategoryStats{Category: tx.Category}
			totals[tx.Category] = entry
			firstSeen[tx.Category] = order
			order++
		}
		entry.Total += tx.Amount
		entry.Count++
		if tx.IsExpense() {
			totalSpend += -tx.Amount
		}
	}

	breakdown := make([]model.CategoryStats, 0, len(totals))
	for _, entry := range totals {
		entry.Mean = entry.Total / float64(entry.Count)
		if totalSpend > 0 {
			entry.Percentage = math.Abs(entry.Total) / totalSpend * 100
		}
		breakdown = append(breakdown, *entry)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		ai, aj := math.Abs(breakdown[i].Total), math.Abs(breakdown[j].Total)
		if ai != aj {
			return ai > aj
		}
		return firstSeen[breakdown[i].Category] < firstSeen[breakdown[j].Category]
	})
	return breakdown
}
