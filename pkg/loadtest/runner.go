package loadtest

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Report is the final result of a load test run.
type Report struct {
	StartTime    time.Time           `json:"start_time"`
	EndTime      time.Time           `json:"end_time"`
	Duration     float64             `json:"duration_seconds"`
	Summary      *Summary            `json:"summary"`
	PerOperation map[string]*Summary `json:"per_operation"`
}

// Runner seeds the catalog, drives the configured number of workers for
// the configured duration and aggregates the results.
type Runner struct {
	cfg       *Config
	client    *Client
	scenario  *Scenario
	collector *Collector
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := NewClient(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Runner{
		cfg:       cfg,
		client:    client,
		scenario:  NewScenario(cfg, client),
		collector: NewCollector(),
	}, nil
}

// Run executes the load test until the configured duration elapses or
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.scenario.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	// Seeding traffic is not part of the measurement.
	r.collector.Reset()
	startTime := time.Now()

	workerCtx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Duration))
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				default:
				}
				result := r.scenario.Execute(workerCtx)
				if workerCtx.Err() != nil {
					// The deadline cut this request short.
					return
				}
				r.collector.Record(result)
			}
		}()
	}
	wg.Wait()

	endTime := time.Now()
	r.scenario.Teardown(ctx)

	return &Report{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     endTime.Sub(startTime).Seconds(),
		Summary:      r.collector.Summary(),
		PerOperation: r.collector.PerOperation(),
	}, nil
}

// Close releases the underlying HTTP client.
func (r *Runner) Close() {
	r.client.Close()
}
