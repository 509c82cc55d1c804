package resolve

import (
	"context"
	"log/slog"
	"time"

	"slate/internal/logging"
	"slate/internal/mediasearch"
	"slate/internal/textutil"
)

const (
	defaultRetryBaseDelay = 1 * time.Second
	defaultRetryMaxDelay  = 10 * time.Second
)

// Resolver resolves titles against a search collaborator with bounded
// retry on throttling.
type Resolver struct {
	searcher  mediasearch.Searcher
	logger    *slog.Logger
	baseDelay time.Duration
	maxDelay  time.Duration
	sleeper   func(time.Duration)
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBackoff overrides the retry backoff delays.
func WithBackoff(baseDelay, maxDelay time.Duration) Option {
	return func(r *Resolver) {
		r.baseDelay = baseDelay
		r.maxDelay = maxDelay
	}
}

// WithSleeper overrides how backoff sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(r *Resolver) {
		if sleeper != nil {
			r.sleeper = sleeper
		}
	}
}

// New constructs a Resolver over the supplied searcher.
func New(searcher mediasearch.Searcher, opts ...Option) *Resolver {
	r := &Resolver{
		searcher:  searcher,
		logger:    logging.NewNop(),
		baseDelay: defaultRetryBaseDelay,
		maxDelay:  defaultRetryMaxDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up one title and classifies the outcome. Throttling errors
// are retried with exponential backoff up to maxRetries additional
// attempts; any other error breaks the loop immediately. maxRetries = 0
// means a single attempt. All failures surface as a StatusError Result,
// never as a panic or returned error.
func (r *Resolver) Resolve(ctx context.Context, query string, maxRetries int) Result {
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		refs, err := r.searcher.Search(ctx, query)
		if err == nil {
			return classify(query, refs)
		}
		lastErr = err

		if !mediasearch.IsRateLimited(err) {
			break
		}
		if attempt == maxRetries {
			break
		}

		delay := r.backoffDelay(attempt)
		r.logger.Debug("throttled, backing off",
			logging.String(logging.FieldQuery, query),
			logging.Int("attempt", attempt+1),
			logging.Duration("backoff", delay),
			logging.Error(err))
		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			lastErr = sleepErr
			break
		}
	}

	return Result{
		Query:        query,
		Status:       StatusError,
		ErrorMessage: lastErr.Error(),
	}
}

// classify maps a candidate list onto a Result. Candidates arrive in
// provider rank order and the order is preserved in Alternatives.
func classify(query string, refs []mediasearch.Reference) Result {
	result := Result{Query: query}
	if len(refs) == 0 {
		result.Status = StatusNotFound
		return result
	}

	key := textutil.NormalizeTitle(query)
	for i := range refs {
		if textutil.NormalizeTitle(refs[i].Title) != key {
			continue
		}
		matched := refs[i]
		result.Status = StatusExact
		result.Matched = &matched
		result.Alternatives = copyRefs(refs[:min(len(refs), maxAlternatives)])
		return result
	}

	matched := refs[0]
	result.Status = StatusFuzzy
	result.Matched = &matched
	if len(refs) > 1 {
		result.Alternatives = copyRefs(refs[1:min(len(refs), maxAlternatives+1)])
	}
	return result
}

func copyRefs(refs []mediasearch.Reference) []mediasearch.Reference {
	out := make([]mediasearch.Reference, len(refs))
	copy(out, refs)
	return out
}

// backoffDelay computes baseDelay x 2^attempt, capped at maxDelay.
func (r *Resolver) backoffDelay(attempt int) time.Duration {
	if r.baseDelay <= 0 {
		return 0
	}
	delay := r.baseDelay
	for i := 0; i < attempt; i++ {
		if r.maxDelay > 0 && delay > r.maxDelay/2 {
			return r.maxDelay
		}
		delay *= 2
	}
	if r.maxDelay > 0 && delay > r.maxDelay {
		return r.maxDelay
	}
	return delay
}

func (r *Resolver) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if ctx != nil && ctx.Err() != nil {
		return ctx.Err()
	}
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
