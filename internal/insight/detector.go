// Package insight scans an enriched batch for cost-saving signals. Unlike
// the per-record enrichment heuristics, every detector here looks across
// records. Each signal is computed independently; a batch with no signals
// yields an empty list, never an error.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// SubscriptionCategory scopes the duplicate-subscription check.
const SubscriptionCategory = "Subscriptions"

// Detector tuning constants.
const (
	// highFeeCount is the fixed size of the bottom-N expense scan.
	highFeeCount = 10

	// trendThreshold is the relative month-over-month spend increase above
	// which the spending trend signal fires.
	trendThreshold = 0.10
)

// Detect runs all detectors over the batch and concatenates their insights
// in a fixed order: duplicate subscriptions, high fees, spending trend,
// recurring clusters.
func Detect(transactions []model.Transaction) []model.CostInsight {
	insights := []model.CostInsight{}

	if in, ok := DuplicateSubscriptions(transactions); ok {
		insights = append(insights, in)
	}
	if in, ok := HighFees(transactions); ok {
		insights = append(insights, in)
	}
	if in, ok := SpendingTrend(transactions); ok {
		insights = append(insights, in)
	}
	insights = append(insights, RecurringCharges(transactions)...)

	return insights
}

// chargeKey identifies a repeated charge: identical description and amount.
type chargeKey struct {
	description string
	amount      float64
}

// DuplicateSubscriptions flags Subscriptions-category transactions that share
// a description and amount with at least one other. Impact is the sum of the
// amounts of every transaction in a flagged group.
func DuplicateSubscriptions(transactions []model.Transaction) (model.CostInsight, bool) {
	groups := map[chargeKey][]model.Transaction{}
	for _, tx := range transactions {
		if tx.Category != SubscriptionCategory {
			continue
		}
		key := chargeKey{tx.Description, tx.Amount}
		groups[key] = append(groups[key], tx)
	}

	var impact float64
	flagged := false
	for _, group := range groups {
		if len(group) <= 1 {
			continue
		}
		flagged = true
		for _, tx := range group {
			impact += tx.Amount
		}
	}
	if !flagged {
		return model.CostInsight{}, false
	}

	return model.CostInsight{
		ID:             uuid.NewString(),
		Type:           model.InsightDuplicateSubscriptions,
		Description:    "Found potential duplicate subscriptions",
		Impact:         impact,
		Recommendation: "Review and consolidate duplicate subscriptions",
		Priority:       model.PriorityHigh,
	}, true
}

// HighFees reports the 10 largest expenses in the batch, selected as the most
// negative signed amounts, not a threshold. Impact is the absolute sum of the
// selected transactions. Skipped when the batch has no expenses.
func HighFees(transactions []model.Transaction) (model.CostInsight, bool) {
	expenses := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}
	if len(expenses) == 0 {
		return model.CostInsight{}, false
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount < expenses[j].Amount
	})
	if len(expenses) > highFeeCount {
		expenses = expenses[:highFeeCount]
	}

	var total float64
	for _, tx := range expenses {
		total += tx.Amount
	}

	return model.CostInsight{
		ID:             uuid.NewString(),
		Type:           model.InsightHighFees,
		Description:    "Identified transactions with high fees",
		Impact:         math.Abs(total),
		Recommendation: "Consider alternative payment methods or providers",
		Priority:       model.PriorityMedium,
	}, true
}

// SpendingTrend compares the first and last month's total spend. It requires
// at least two distinct months and a non-zero first month; otherwise the
// signal is simply skipped. Impact is the relative increase fraction.
func SpendingTrend(transactions []model.Transaction) (model.CostInsight, bool) {
	spendByMonth := map[string]float64{}
	for _, tx := range transactions {
		key := tx.MonthKey()
		if _, ok := spendByMonth[key]; !ok {
			spendByMonth[key] = 0
		}
		if tx.IsExpense() {
			spendByMonth[key] += -tx.Amount
		}
	}
	if len(spendByMonth) < 2 {
		return model.CostInsight{}, false
	}

	months := make([]string, 0, len(spendByMonth))
	for month := range spendByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	first := spendByMonth[months[0]]
	last := spendByMonth[months[len(months)-1]]
	if first == 0 {
		return model.CostInsight{}, false
	}

	increase := (last - first) / first
	if increase <= trendThreshold {
		return model.CostInsight{}, false
	}

	return model.CostInsight{
		ID:             uuid.NewString(),
		Type:           model.InsightSpendingIncrease,
		Description:    fmt.Sprintf("Monthly spending increased by %.1f%%", increase*100),
		Impact:         increase,
		Recommendation: "Review recent spending patterns for unnecessary increases",
		Priority:       model.PriorityMedium,
	}, true
}

// RecurringCharges groups the whole batch by (description, amount) and emits
// one insight per group that repeats, regardless of category. This overlaps
// in method with DuplicateSubscriptions but differs in scope, so the two
// stay separate signals.
func RecurringCharges(transactions []model.Transaction) []model.CostInsight {
	groups := map[chargeKey]int{}
	firstSeen := map[chargeKey]int{}
	order := []chargeKey{}

	for _, tx := range transactions {
		key := chargeKey{tx.Description, tx.Amount}
		if _, ok := groups[key]; !ok {
			firstSeen[key] = len(order)
			order = append(order, key)
		}
		groups[key]++
	}

	insights := []model.CostInsight{}
	for _, key := range order {
		count := groups[key]
		if count <= 1 {
			continue
		}
		insights = append(insights, model.CostInsight{
			ID:   uuid.NewString(),
			Type: model.InsightRecurringCharges,
			Description: fmt.Sprintf("Recurring charge %q of %.2f occurs %d times",
				key.description, key.amount, count),
			Impact:         key.amount * float64(count),
			Recommendation: "Verify this recurring cost is still needed",
			Priority:       model.PriorityLow,
		})
	}
	return insights
}
