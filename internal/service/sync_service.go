package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/bankapi"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// SyncService fetches transactions from the configured bank providers and
// feeds them through the analysis pipeline.
type SyncService struct {
	clients  map[string]bankapi.Client
	analysis *AnalysisService
}

// NewSyncService creates a new SyncService with the provided client registry
// and analysis service.
func NewSyncService(clients map[string]bankapi.Client, analysis *AnalysisService) *SyncService {
	return &SyncService{
		clients:  clients,
		analysis: analysis,
	}
}

// Providers returns the configured provider tags in sorted order.
func (s *SyncService) Providers() []string {
	providers := make([]string, 0, len(s.clients))
	for tag := range s.clients {
		providers = append(providers, tag)
	}
	sort.Strings(providers)
	return providers
}

// Supports reports whether a client is configured for the provider tag.
func (s *SyncService) Supports(provider string) bool {
	_, ok := s.clients[provider]
	return ok
}

// FetchTransactions fetches one provider's raw batch for the date range and
// runs it through normalization, categorization, and enrichment.
func (s *SyncService) FetchTransactions(ctx context.Context, provider string, start, end time.Time) ([]model.Transaction, []model.RecordError, error) {
	client, ok := s.clients[provider]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, provider)
	}

	raws, err := client.FetchTransactions(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("%w from %s: %w", apperrors.ErrFailedToFetchTransactions, provider, err)
	}

	return s.analysis.Process(provider, raws)
}

// FetchAll fetches every configured provider concurrently and concatenates
// the processed batches in sorted provider order, so the combined batch is
// reproducible regardless of which fetch finishes first.
func (s *SyncService) FetchAll(ctx context.Context, start, end time.Time) ([]model.Transaction, []model.RecordError, error) {
	providers := s.Providers()
	perProvider := make([][]model.Transaction, len(providers))
	perProviderErrs := make([][]model.RecordError, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range providers {
		i, provider := i, provider
		g.Go(func() error {
			transactions, recordErrors, err := s.FetchTransactions(gctx, provider, start, end)
			if err != nil {
				return err
			}
			// Each goroutine writes its own slot; no locking needed.
			perProvider[i] = transactions
			perProviderErrs[i] = recordErrors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	combined := []model.Transaction{}
	combinedErrs := []model.RecordError{}
	for i := range providers {
		combined = append(combined, perProvider[i]...)
		combinedErrs = append(combinedErrs, perProviderErrs[i]...)
	}
	return combined, combinedErrs, nil
}

// SyncAndAnalyze fetches all providers for the range and computes the full
// analysis over the combined batch.
func (s *SyncService) SyncAndAnalyze(ctx context.Context, start, end time.Time) (model.Analysis, error) {
	transactions, recordErrors, err := s.FetchAll(ctx, start, end)
	if err != nil {
		return model.Analysis{}, err
	}

	analysis := s.analysis.Analyze(transactions)
	analysis.Errors = recordErrors
	return analysis, nil
}
