package loadtest

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// createdListing remembers where a test-created listing lives so it can
// be deleted later.
type createdListing struct {
	Ownership    string
	PropertyType string
	ID           string
}

// Scenario produces and executes the weighted operation mix. Deletes
// only target listings the scenario itself created.
type Scenario struct {
	cfg    *Config
	client *Client
	gen    *Generator

	mu          sync.Mutex
	createdIDs  []createdListing
	totalWeight int
	rng         *rand.Rand
}

// NewScenario creates a scenario over the given client.
func NewScenario(cfg *Config, client *Client) *Scenario {
	totalWeight := 0
	for _, op := range cfg.Operations {
		totalWeight += op.Weight
	}
	seed := time.Now().UnixNano()
	return &Scenario{
		cfg:         cfg,
		client:      client,
		gen:         NewGenerator(seed),
		createdIDs:  make([]createdListing, 0, cfg.Seed),
		totalWeight: totalWeight,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Seed creates the configured number of listings before measurement.
func (s *Scenario) Seed(ctx context.Context) error {
	for i := 0; i < s.cfg.Seed; i++ {
		if err := s.create(ctx); err != nil {
			return fmt.Errorf("failed to seed listing %d: %w", i, err)
		}
	}
	return nil
}

// Execute picks the next weighted operation, runs it and returns the
// timed result.
func (s *Scenario) Execute(ctx context.Context) OperationResult {
	opType := s.nextOperationType()
	start := time.Now()

	var err error
	switch opType {
	case "search":
		err = s.client.Search(ctx, s.randomOwnership(), s.randomPropertyType())
	case "keyword":
		err = s.client.SearchByKeyword(ctx, s.randomKeyword())
	case "filter":
		minPrice, maxPrice := s.randomPriceRange()
		err = s.client.Filter(ctx, s.randomOwnership(), minPrice, maxPrice)
	case "stats":
		err = s.client.Stats(ctx, s.randomOwnership())
	case "create":
		err = s.create(ctx)
	case "delete":
		target, ok := s.popCreated()
		if !ok {
			// Nothing to delete yet, create instead.
			opType = "create"
			err = s.create(ctx)
			break
		}
		err = s.client.DeleteListing(ctx, target.Ownership, target.PropertyType, target.ID)
		if err != nil {
			// The listing may still exist; keep it for teardown.
			s.pushCreated(target)
		}
	}

	return OperationResult{Type: opType, Duration: time.Since(start), Err: err}
}

// Teardown deletes every remaining listing the scenario created.
func (s *Scenario) Teardown(ctx context.Context) {
	if !s.cfg.Cleanup {
		return
	}
	for {
		target, ok := s.popCreated()
		if !ok {
			return
		}
		// Cleanup is best effort.
		_ = s.client.DeleteListing(ctx, target.Ownership, target.PropertyType, target.ID)
	}
}

func (s *Scenario) create(ctx context.Context) error {
	s.mu.Lock()
	spec := s.gen.Listing()
	s.mu.Unlock()

	id, err := s.client.CreateListing(ctx, spec.Path, spec.Body)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.createdIDs = append(s.createdIDs, createdListing{
		Ownership:    spec.Ownership,
		PropertyType: spec.PropertyType,
		ID:           id,
	})
	s.mu.Unlock()
	return nil
}

func (s *Scenario) pushCreated(target createdListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createdIDs = append(s.createdIDs, target)
}

func (s *Scenario) popCreated() (createdListing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.createdIDs) == 0 {
		return createdListing{}, false
	}
	idx := len(s.createdIDs) - 1
	target := s.createdIDs[idx]
	s.createdIDs = s.createdIDs[:idx]
	return target, true
}

// nextOperationType picks an operation by weighted selection.
func (s *Scenario) nextOperationType() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.rng.Intn(s.totalWeight)
	cumulative := 0
	for _, op := range s.cfg.Operations {
		cumulative += op.Weight
		if r < cumulative {
			return op.Type
		}
	}
	return s.cfg.Operations[len(s.cfg.Operations)-1].Type
}

func (s *Scenario) randomOwnership() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Ownership()
}

func (s *Scenario) randomPropertyType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.PropertyTypeFilter()
}

func (s *Scenario) randomKeyword() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Keyword()
}

func (s *Scenario) randomPriceRange() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.PriceRange()
}
