// Package scheduler runs the periodic background sync: fetch from every
// configured provider, run the pipeline, and log the resulting aggregates.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdevries/Banking-Insights-Backend/internal/service"
)

// syncWindow is the date range each scheduled run covers, ending now.
const syncWindow = 30 * 24 * time.Hour

// Scheduler triggers periodic provider syncs on a cron spec.
type Scheduler struct {
	cron *cron.Cron
	sync *service.SyncService
}

// New creates a Scheduler that runs the sync job on the given cron spec.
// Returns an error if the spec does not parse.
func New(spec string, syncService *service.SyncService) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		sync: syncService,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	end := time.Now()
	start := end.Add(-syncWindow)

	analysis, err := s.sync.SyncAndAnalyze(ctx, start, end)
	if err != nil {
		log.Printf("scheduled sync failed: %v", err)
		return
	}

	log.Printf("scheduled sync: %d transactions, %d insights, net cashflow %.2f (%d records dropped)",
		len(analysis.Transactions), len(analysis.Insights),
		analysis.Summary.NetCashflow, len(analysis.Errors))
}
