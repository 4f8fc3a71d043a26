package loadtest

import (
	"sort"
	"sync"
	"time"
)

// OperationResult is the outcome of a single request.
type OperationResult struct {
	Type     string
	Duration time.Duration
	Err      error
}

// LatencyStats holds latency aggregates in milliseconds.
type LatencyStats struct {
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	Median int64   `json:"median"`
	P90    int64   `json:"p90"`
	P95    int64   `json:"p95"`
	P99    int64   `json:"p99"`
}

// Summary is the aggregate over a set of recorded operations.
type Summary struct {
	TotalOperations int64            `json:"total_operations"`
	TotalErrors     int64            `json:"total_errors"`
	SuccessRate     float64          `json:"success_rate"`
	Throughput      float64          `json:"throughput"` // ops per second
	Latency         LatencyStats     `json:"latency"`
	ErrorsByType    map[string]int64 `json:"errors_by_type,omitempty"`
}

type operationStats struct {
	count        int64
	failCount    int64
	totalLatency int64
	latencies    []int64
}

// Collector aggregates operation results. Safe for concurrent use.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time

	totalOps     int64
	failedOps    int64
	totalLatency int64
	latencies    []int64
	errorsByType map[string]int64
	perOperation map[string]*operationStats
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		startTime:    time.Now(),
		latencies:    make([]int64, 0, 10000),
		errorsByType: make(map[string]int64),
		perOperation: make(map[string]*operationStats),
	}
}

// Record adds one operation result.
func (c *Collector) Record(result OperationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	latencyMs := result.Duration.Milliseconds()

	c.totalOps++
	c.totalLatency += latencyMs
	c.latencies = append(c.latencies, latencyMs)
	if result.Err != nil {
		c.failedOps++
		c.errorsByType[result.Err.Error()]++
	}

	stats := c.perOperation[result.Type]
	if stats == nil {
		stats = &operationStats{latencies: make([]int64, 0, 1000)}
		c.perOperation[result.Type] = stats
	}
	stats.count++
	if result.Err != nil {
		stats.failCount++
	}
	stats.totalLatency += latencyMs
	stats.latencies = append(stats.latencies, latencyMs)
}

// Summary returns the aggregate over everything recorded so far.
func (c *Collector) Summary() *Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := &Summary{
		TotalOperations: c.totalOps,
		TotalErrors:     c.failedOps,
		ErrorsByType:    make(map[string]int64, len(c.errorsByType)),
	}
	for errType, count := range c.errorsByType {
		s.ErrorsByType[errType] = count
	}
	if c.totalOps > 0 {
		s.SuccessRate = float64(c.totalOps-c.failedOps) / float64(c.totalOps) * 100
	}
	if elapsed := time.Since(c.startTime).Seconds(); elapsed > 0 {
		s.Throughput = float64(c.totalOps) / elapsed
	}
	s.Latency = buildLatencyStats(c.latencies, c.totalLatency)
	return s
}

// PerOperation returns a summary per operation type.
func (c *Collector) PerOperation() map[string]*Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	elapsed := time.Since(c.startTime).Seconds()
	result := make(map[string]*Summary, len(c.perOperation))
	for opType, stats := range c.perOperation {
		s := &Summary{
			TotalOperations: stats.count,
			TotalErrors:     stats.failCount,
		}
		if stats.count > 0 {
			s.SuccessRate = float64(stats.count-stats.failCount) / float64(stats.count) * 100
		}
		if elapsed > 0 {
			s.Throughput = float64(stats.count) / elapsed
		}
		s.Latency = buildLatencyStats(stats.latencies, stats.totalLatency)
		result[opType] = s
	}
	return result
}

// Reset clears all recorded results and restarts the clock.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startTime = time.Now()
	c.totalOps = 0
	c.failedOps = 0
	c.totalLatency = 0
	c.latencies = c.latencies[:0]
	c.errorsByType = make(map[string]int64)
	c.perOperation = make(map[string]*operationStats)
}

func buildLatencyStats(latencies []int64, total int64) LatencyStats {
	if len(latencies) == 0 {
		return LatencyStats{}
	}

	sorted := make([]int64, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return LatencyStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   float64(total) / float64(len(sorted)),
		Median: sorted[len(sorted)/2],
		P90:    percentile(sorted, 0.90),
		P95:    percentile(sorted, 0.95),
		P99:    percentile(sorted, 0.99),
	}
}

func percentile(sorted []int64, p float64) int64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
