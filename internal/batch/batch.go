// Package batch converts many logical names concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/pname/pkg/pname"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for a batch Runner.
type Config struct {
	Generator *pname.Generator
	Options   pname.Options
	Workers   int // <= 0 means runtime.GOMAXPROCS(0)
	Logger    *slog.Logger
}

// Runner fans conversions out across a bounded set of goroutines.
type Runner struct {
	generator *pname.Generator
	options   pname.Options
	workers   int
	logger    *slog.Logger
}

// Report is the outcome of one batch run. Results are in input order.
type Report struct {
	RunID   string
	Results []pname.GenerationResult
	Elapsed time.Duration
}

// Unknown returns the number of results that contain at least one token
// not found in the dictionary.
func (r *Report) Unknown() int {
	n := 0
	for _, res := range r.Results {
		for _, t := range res.Tokens {
			if !t.Known() {
				n++
				break
			}
		}
	}
	return n
}

// New creates a Runner.
func New(cfg Config) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	gen := cfg.Generator
	if gen == nil {
		gen = pname.New()
	}
	return &Runner{
		generator: gen,
		options:   cfg.Options,
		workers:   workers,
		logger:    logger,
	}
}

// Workers returns the concurrency limit.
func (r *Runner) Workers() int {
	return r.workers
}

// Run converts names and returns their results in input order. The first
// failure cancels the remaining work.
func (r *Runner) Run(ctx context.Context, names []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.New().String(),
		Results: make([]pname.GenerationResult, len(names)),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Debug("starting batch", "names", len(names), "workers", r.workers,
		"tokenizer", r.options.Strategy, "naming", r.options.Convention)

	start := time.Now()
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, name := range names {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			res, err := r.generator.Run(r.options, name)
			if err != nil {
				return fmt.Errorf("line %d (%q): %w", i+1, name, err)
			}
			report.Results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error("batch failed", "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	logger.Info("batch complete", "names", len(names), "unknown", report.Unknown(), "elapsed", report.Elapsed)
	return report, nil
}

// ReadNames reads one logical name per line. Surrounding whitespace is
// trimmed and blank lines are skipped.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return names, nil
}
