package service

import (
	"github.com/jdevries/Banking-Insights-Backend/internal/aggregate"
	"github.com/jdevries/Banking-Insights-Backend/internal/categorize"
	"github.com/jdevries/Banking-Insights-Backend/internal/enrich"
	"github.com/jdevries/Banking-Insights-Backend/internal/insight"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
	"github.com/jdevries/Banking-Insights-Backend/internal/normalize"
)

// AnalysisService runs the transaction pipeline: normalize, categorize,
// enrich, aggregate, detect insights. The service is stateless per
// invocation; each stage produces a new slice and never mutates its input.
type AnalysisService struct {
	normalizer *normalize.Normalizer
	engine     *categorize.Engine
}

// NewAnalysisService creates a new AnalysisService with the provided
// normalizer and categorization engine.
func NewAnalysisService(normalizer *normalize.Normalizer, engine *categorize.Engine) *AnalysisService {
	return &AnalysisService{
		normalizer: normalizer,
		engine:     engine,
	}
}

// Normalizer exposes the provider mappings, used by callers that need
// provider validation or reverse serialization.
func (s *AnalysisService) Normalizer() *normalize.Normalizer {
	return s.normalizer
}

// Process converts a raw provider batch into enriched canonical
// transactions. Malformed records are dropped and reported; only an unknown
// provider is an error.
func (s *AnalysisService) Process(provider string, raws []model.RawTransaction) ([]model.Transaction, []model.RecordError, error) {
	transactions, recordErrors, err := s.normalizer.Normalize(provider, raws)
	if err != nil {
		return nil, nil, err
	}

	transactions = s.engine.Categorize(transactions)
	transactions = enrich.Enrich(transactions)

	return transactions, recordErrors, nil
}

// Analyze computes the full analysis for an already-processed batch.
// Empty batches produce zero-valued aggregates and empty collections.
func (s *AnalysisService) Analyze(transactions []model.Transaction) model.Analysis {
	return model.Analysis{
		Transactions: transactions,
		Summary:      aggregate.Summarize(transactions),
		Categories:   aggregate.CategoryBreakdown(transactions),
		Insights:     insight.Detect(transactions),
	}
}

// ProcessAndAnalyze runs the whole pipeline for one provider's raw batch.
func (s *AnalysisService) ProcessAndAnalyze(provider string, raws []model.RawTransaction) (model.Analysis, error) {
	transactions, recordErrors, err := s.Process(provider, raws)
	if err != nil {
		return model.Analysis{}, err
	}

	analysis := s.Analyze(transactions)
	analysis.Errors = recordErrors
	return analysis, nil
}
