// Command realty-bench drives synthetic traffic against a running
// catalog API and reports latency and error statistics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"realty/pkg/loadtest"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("realty-bench", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to a YAML config file")
	target := fs.String("target", "", "base URL of the API under test")
	duration := fs.Duration("duration", 0, "how long to run the test")
	workers := fs.Int("workers", 0, "number of concurrent workers")
	seed := fs.Int("seed", 0, "listings to create before measuring")
	jsonOut := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := loadtest.DefaultConfig()
	if *configFile != "" {
		loaded, err := loadtest.LoadConfig(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if *target != "" {
		cfg.Target = *target
	}
	if *duration > 0 {
		cfg.Duration = loadtest.Duration(*duration)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}

	runner, err := loadtest.NewRunner(cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Running against %s for %s with %d workers\n",
		cfg.Target, cfg.Duration, cfg.Workers)

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if *jsonOut {
		return json.NewEncoder(os.Stdout).Encode(report)
	}
	printReport(report)
	return nil
}

func printReport(report *loadtest.Report) {
	s := report.Summary
	fmt.Printf("\nCompleted in %.1fs\n", report.Duration)
	fmt.Printf("  operations: %d (%.1f%% ok, %.1f ops/s)\n",
		s.TotalOperations, s.SuccessRate, s.Throughput)
	fmt.Printf("  latency ms: min=%d p50=%d p90=%d p95=%d p99=%d max=%d\n",
		s.Latency.Min, s.Latency.Median, s.Latency.P90,
		s.Latency.P95, s.Latency.P99, s.Latency.Max)

	opTypes := make([]string, 0, len(report.PerOperation))
	for opType := range report.PerOperation {
		opTypes = append(opTypes, opType)
	}
	sort.Strings(opTypes)

	fmt.Println("\nPer operation:")
	for _, opType := range opTypes {
		op := report.PerOperation[opType]
		fmt.Printf("  %-8s %6d ops  %5.1f%% ok  p95=%dms\n",
			opType, op.TotalOperations, op.SuccessRate, op.Latency.P95)
	}

	if len(s.ErrorsByType) > 0 {
		fmt.Println("\nErrors:")
		for errType, count := range s.ErrorsByType {
			fmt.Printf("  %6d  %s\n", count, errType)
		}
	}
}
