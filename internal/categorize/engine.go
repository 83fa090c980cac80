// Package categorize assigns every transaction exactly one category by
// applying an ordered rule list. The first matching rule wins; rule order is
// part of the contract.
package categorize

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// FallbackCategory is assigned when no rule matches and the provider did not
// supply a category of its own.
const FallbackCategory = "Other"

// Rule is a named matcher. A rule matches a transaction when any keyword is a
// case-insensitive substring of the description, any merchant pattern matches
// the merchant, or (when both bounds are set) the absolute amount falls
// within [MinAmount, MaxAmount].
type Rule struct {
	Name             string   `json:"name"`
	Keywords         []string `json:"keywords,omitempty"`
	MerchantPatterns []string `json:"merchant_patterns,omitempty"`
	MinAmount        *float64 `json:"min_amount,omitempty"`
	MaxAmount        *float64 `json:"max_amount,omitempty"`
}

type compiledRule struct {
	rule     Rule
	keywords []string
	patterns []*regexp.Regexp
}

// Engine evaluates an ordered rule list. Construction compiles all merchant
// patterns; a malformed pattern is a configuration defect and fails fast.
type Engine struct {
	rules []compiledRule
}

// NewEngine compiles the given rule list. Rule order is preserved.
func NewEngine(rules []Rule) (*Engine, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr := compiledRule{rule: rule}
		for _, keyword := range rule.Keywords {
			cr.keywords = append(cr.keywords, strings.ToLower(keyword))
		}
		for _, pattern := range rule.MerchantPatterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q pattern %q: %v",
					apperrors.ErrInvalidRule, rule.Name, pattern, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		compiled = append(compiled, cr)
	}
	return &Engine{rules: compiled}, nil
}

// Categorize assigns each transaction its category and returns a new slice;
// the input is not mutated. Assignment is deterministic and idempotent.
func (e *Engine) Categorize(transactions []model.Transaction) []model.Transaction {
	result := make([]model.Transaction, len(transactions))
	for i, tx := range transactions {
		tx.Category = e.categoryFor(tx)
		result[i] = tx
	}
	return result
}

// categoryFor applies the rules in order and returns the first match.
// Unmatched transactions keep a non-empty provider-supplied category;
// otherwise they fall back to "Other".
func (e *Engine) categoryFor(tx model.Transaction) string {
	description := strings.ToLower(tx.Description)
	merchant := strings.ToLower(tx.Merchant)
	amount := math.Abs(tx.Amount)

	for _, cr := range e.rules {
		if cr.matches(description, merchant, amount) {
			return cr.rule.Name
		}
	}

	if tx.Category != "" {
		return tx.Category
	}
	return FallbackCategory
}

func (cr compiledRule) matches(description, merchant string, amount float64) bool {
	for _, keyword := range cr.keywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}

	if merchant != "" {
		for _, re := range cr.patterns {
			if re.MatchString(merchant) {
				return true
			}
		}
	}

	if cr.rule.MinAmount != nil && cr.rule.MaxAmount != nil {
		if amount >= *cr.rule.MinAmount && amount <= *cr.rule.MaxAmount {
			return true
		}
	}

	return false
}
