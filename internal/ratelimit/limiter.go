package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"slate/internal/logging"
)

// Work is one unit of asynchronous work submitted to a Limiter.
type Work func(ctx context.Context) (any, error)

// Ticket is the handle returned by Submit. It resolves to the work's own
// outcome once the drain loop has dispatched and completed the item.
type Ticket struct {
	done  chan struct{}
	value any
	err   error
}

func (t *Ticket) resolve(value any, err error) {
	t.value = value
	t.err = err
	close(t.done)
}

// Done returns a channel that closes when the work has completed.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the work completes or ctx is done. Abandoning a ticket
// does not remove the item from the queue; it still dispatches in order.
func (t *Ticket) Wait(ctx context.Context) (any, error) {
	if ctx == nil {
		<-t.done
		return t.value, t.err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.done:
		return t.value, t.err
	}
}

type item struct {
	ctx    context.Context
	work   Work
	ticket *Ticket
}

// Limiter serializes work toward one external provider. The pending list and
// draining flag are guarded by a mutex so that exactly one drain goroutine is
// active per instance.
type Limiter struct {
	name     string
	interval time.Duration
	logger   *slog.Logger
	sleeper  func(time.Duration)

	mu        sync.Mutex
	pending   []*item
	draining  bool
	lastStart time.Time
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithLogger attaches a logger for dispatch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSleeper overrides how pacing waits are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(l *Limiter) {
		if sleeper != nil {
			l.sleeper = sleeper
		}
	}
}

// New creates a Limiter for the named provider. Intervals below zero are
// treated as zero (no pacing, still serialized FIFO).
func New(name string, interval time.Duration, opts ...Option) *Limiter {
	if interval < 0 {
		interval = 0
	}
	l := &Limiter{
		name:     name,
		interval: interval,
		logger:   logging.NewNop(),
		sleeper:  time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit appends work to the queue and returns its ticket. The drain loop is
// started if it is not already running. The supplied context is passed to the
// work when dispatched; if it is already done by then the item is skipped and
// its ticket resolves with the context error.
func (l *Limiter) Submit(ctx context.Context, work Work) *Ticket {
	ticket := &Ticket{done: make(chan struct{})}
	if work == nil {
		ticket.resolve(nil, fmt.Errorf("%s limiter: nil work", l.name))
		return ticket
	}

	l.mu.Lock()
	l.pending = append(l.pending, &item{ctx: ctx, work: work, ticket: ticket})
	start := !l.draining
	if start {
		l.draining = true
	}
	queued := len(l.pending)
	l.mu.Unlock()

	l.logger.Debug("work queued",
		logging.String(logging.FieldProvider, l.name),
		logging.Int("queue_length", queued))

	if start {
		go l.drain()
	}
	return ticket
}

// Do submits work and waits for its outcome.
func (l *Limiter) Do(ctx context.Context, work Work) (any, error) {
	return l.Submit(ctx, work).Wait(ctx)
}

// QueueLength reports the number of items waiting to be dispatched. Intended
// for introspection and tests, not for correctness decisions.
func (l *Limiter) QueueLength() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

func (l *Limiter) drain() {
	for {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.draining = false
			l.mu.Unlock()
			return
		}
		next := l.pending[0]
		l.pending = l.pending[1:]
		last := l.lastStart
		l.mu.Unlock()

		if next.ctx != nil && next.ctx.Err() != nil {
			// Canceled before dispatch: skip without consuming an interval slot.
			next.ticket.resolve(nil, next.ctx.Err())
			continue
		}

		if l.interval > 0 && !last.IsZero() {
			if remaining := l.interval - time.Since(last); remaining > 0 {
				l.sleeper(remaining)
			}
		}

		l.mu.Lock()
		l.lastStart = time.Now()
		l.mu.Unlock()

		l.dispatch(next)
	}
}

func (l *Limiter) dispatch(it *item) {
	// A panicking work item must not take down the drain loop; its failure
	// belongs to its own ticket alone.
	defer func() {
		if r := recover(); r != nil {
			it.ticket.resolve(nil, fmt.Errorf("%s limiter: work panicked: %v", l.name, r))
		}
	}()
	value, err := it.work(it.ctx)
	if err != nil {
		l.logger.Debug("work failed",
			logging.String(logging.FieldProvider, l.name),
			logging.Error(err))
	}
	it.ticket.resolve(value, err)
}
