package testutil

import (
	"testing"

	"github.com/jdevries/Banking-Insights-Backend/internal/categorize"
	"github.com/jdevries/Banking-Insights-Backend/internal/normalize"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
)

// NewTestAnalysisService builds an AnalysisService with the builtin provider
// mappings and the default rule set.
func NewTestAnalysisService(t *testing.T) *service.AnalysisService {
	t.Helper()

	engine, err := categorize.NewEngine(categorize.DefaultRules())
	if err != nil {
		t.Fatalf("Failed to compile default rules: %v", err)
	}

	return service.NewAnalysisService(normalize.New(), engine)
}
