// Package schedule wires up the cron job that periodically re-runs the
// collection pipeline so the snapshots stay fresh.
package schedule

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron around a collection run.
type Scheduler struct {
	cron *cron.Cron
	spec string // cron spec, e.g. "@every 6h"
	run  func(ctx context.Context)
}

// New creates a Scheduler that invokes run on the given cron spec.
func New(spec string, run func(ctx context.Context)) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec: spec,
		run:  run,
	}
}

// Start registers the job and starts the scheduler. Also runs one collection
// immediately so the snapshots are populated without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	log.Printf("[scheduler] started, spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.run(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] stopped")
}
