// Package loadtest drives synthetic traffic against a running catalog
// API and aggregates latency and error statistics per operation.
package loadtest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that accepts either an
// integer (nanoseconds) or a string like "30s" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var i int64
	if err := value.Decode(&i); err == nil {
		*d = Duration(time.Duration(i))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// OperationWeight is one entry of the traffic mix. The weight is the
// relative share of requests of that type.
type OperationWeight struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// Config holds the load test configuration.
type Config struct {
	// Target is the base URL of the API under test.
	Target   string   `yaml:"target"`
	Duration Duration `yaml:"duration"`
	Workers  int      `yaml:"workers"`

	// Seed is the number of listings created before measurement starts.
	Seed int `yaml:"seed"`

	// Cleanup deletes every listing the test created when it finishes.
	Cleanup bool `yaml:"cleanup"`

	Operations []OperationWeight `yaml:"operations"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig returns a short read-heavy run against a local server.
func DefaultConfig() *Config {
	return &Config{
		Target:   "http://localhost:8080",
		Duration: Duration(time.Minute),
		Workers:  4,
		Seed:     50,
		Cleanup:  true,
		Operations: []OperationWeight{
			{Type: "search", Weight: 4},
			{Type: "keyword", Weight: 2},
			{Type: "filter", Weight: 2},
			{Type: "stats", Weight: 1},
			{Type: "create", Weight: 2},
			{Type: "delete", Weight: 1},
		},
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Target == "" {
		c.Target = defaults.Target
	}
	if c.Duration == 0 {
		c.Duration = defaults.Duration
	}
	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
	if c.Seed == 0 {
		c.Seed = defaults.Seed
	}
	if len(c.Operations) == 0 {
		c.Operations = defaults.Operations
	}
}

var validOperations = map[string]bool{
	"search":  true,
	"keyword": true,
	"filter":  true,
	"stats":   true,
	"create":  true,
	"delete":  true,
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target URL is required")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Workers > 1000 {
		return fmt.Errorf("workers must not exceed 1000")
	}
	if c.Seed < 0 {
		return fmt.Errorf("seed must be non-negative")
	}

	totalWeight := 0
	for i, op := range c.Operations {
		if !validOperations[op.Type] {
			return fmt.Errorf("operation[%d]: unknown type %q", i, op.Type)
		}
		if op.Weight < 0 {
			return fmt.Errorf("operation[%d]: weight must be non-negative", i)
		}
		totalWeight += op.Weight
	}
	if totalWeight == 0 {
		return fmt.Errorf("total operation weight must be positive")
	}
	return nil
}
