package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"slate/internal/logging"
	"slate/internal/resolve"
)

const (
	// DefaultDelay keeps sequential lookups under common provider
	// request-rate ceilings.
	DefaultDelay = 300 * time.Millisecond
	// DefaultMaxRetries bounds throttling retries per title.
	DefaultMaxRetries = 2
)

// Resolver resolves one title to a classified result.
type Resolver interface {
	Resolve(ctx context.Context, query string, maxRetries int) resolve.Result
}

// Progress describes the position about to be processed.
type Progress struct {
	Current    int
	Total      int
	Percentage int
}

// Options configures one batch run. Callbacks may be nil; Delay and
// MaxRetries must not be negative.
type Options struct {
	Delay      time.Duration
	MaxRetries int
	OnProgress func(Progress)
	OnResult   func(resolve.Result)
}

// Defaults returns Options populated with the repository defaults.
func Defaults() Options {
	return Options{Delay: DefaultDelay, MaxRetries: DefaultMaxRetries}
}

// Runner executes batches against a single resolver.
type Runner struct {
	resolver Resolver
	logger   *slog.Logger
	sleeper  func(time.Duration)
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger attaches a logger for per-item diagnostics.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSleeper overrides how pacing delays are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) RunnerOption {
	return func(r *Runner) {
		if sleeper != nil {
			r.sleeper = sleeper
		}
	}
}

// NewRunner constructs a Runner over the supplied resolver.
func NewRunner(resolver Resolver, opts ...RunnerOption) *Runner {
	r := &Runner{
		resolver: resolver,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves titles in input order and returns results in that same
// order. Progress is emitted before each item; the per-result callback
// fires immediately after each item completes. The pacing delay is skipped
// after the final item. Run returns an error only for a malformed
// configuration or a canceled context (with the results collected so far),
// never for per-item failures.
func (r *Runner) Run(ctx context.Context, titles []string, opts Options) ([]resolve.Result, error) {
	if r.resolver == nil {
		return nil, errors.New("batch: resolver required")
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("batch: delay must not be negative, got %v", opts.Delay)
	}
	if opts.MaxRetries < 0 {
		return nil, fmt.Errorf("batch: max retries must not be negative, got %d", opts.MaxRetries)
	}

	total := len(titles)
	results := make([]resolve.Result, 0, total)
	for i, title := range titles {
		if ctx != nil && ctx.Err() != nil {
			return results, ctx.Err()
		}

		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Current:    i + 1,
				Total:      total,
				Percentage: percentage(i+1, total),
			})
		}

		result := r.resolver.Resolve(ctx, title, opts.MaxRetries)
		results = append(results, result)
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
		r.logger.Debug("title resolved",
			logging.String(logging.FieldQuery, title),
			logging.String("status", string(result.Status)),
			logging.Int("position", i+1),
			logging.Int("total", total))

		if i < total-1 && opts.Delay > 0 {
			if err := r.sleep(ctx, opts.Delay); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

// percentage rounds up so the final item always reports 100.
func percentage(current, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(current) * 100 / float64(total)))
}

func (r *Runner) sleep(ctx context.Context, delay time.Duration) error {
	if r.sleeper != nil {
		r.sleeper(delay)
		return nil
	}
	if ctx == nil {
		time.Sleep(delay)
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
