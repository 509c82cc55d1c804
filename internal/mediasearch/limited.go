package mediasearch

import (
	"context"

	"slate/internal/ratelimit"
)

type limitedSearcher struct {
	inner   Searcher
	limiter *ratelimit.Limiter
}

// NewLimitedSearcher wraps a Searcher so that every lookup is submitted
// through the provider's rate limiter. Callers sharing one limiter instance
// get strictly serialized, paced access to the provider.
func NewLimitedSearcher(inner Searcher, limiter *ratelimit.Limiter) Searcher {
	if limiter == nil {
		return inner
	}
	return &limitedSearcher{inner: inner, limiter: limiter}
}

func (s *limitedSearcher) Search(ctx context.Context, query string) ([]Reference, error) {
	value, err := s.limiter.Do(ctx, func(ctx context.Context) (any, error) {
		return s.inner.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	refs, _ := value.([]Reference)
	return refs, nil
}
