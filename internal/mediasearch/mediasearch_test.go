package mediasearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"slate/internal/ratelimit"
)

func TestIsRateLimited(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"structured 429", &StatusError{Provider: "tmdb", StatusCode: http.StatusTooManyRequests}, true},
		{"structured 500", &StatusError{Provider: "tmdb", StatusCode: http.StatusInternalServerError}, false},
		{"wrapped structured", fmt.Errorf("search: %w", &StatusError{StatusCode: 429}), true},
		{"text 429", errors.New("tmdb search returned 429"), true},
		{"text rate limit", errors.New("provider said: Rate Limit exceeded"), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRateLimited(tc.err); got != tc.want {
				t.Fatalf("IsRateLimited(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestLimitedSearcherRoutesThroughLimiter(t *testing.T) {
	var queries []string
	inner := SearcherFunc(func(_ context.Context, query string) ([]Reference, error) {
		queries = append(queries, query)
		return []Reference{{ID: 1, Title: query}}, nil
	})
	limiter := ratelimit.New("test", 0)
	searcher := NewLimitedSearcher(inner, limiter)

	refs, err := searcher.Search(context.Background(), "Fight Club")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(refs) != 1 || refs[0].Title != "Fight Club" {
		t.Fatalf("unexpected references: %+v", refs)
	}
	if len(queries) != 1 {
		t.Fatalf("expected one inner call, got %d", len(queries))
	}
}

func TestLimitedSearcherPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	inner := SearcherFunc(func(context.Context, string) ([]Reference, error) {
		return nil, boom
	})
	searcher := NewLimitedSearcher(inner, ratelimit.New("test", 0))
	if _, err := searcher.Search(context.Background(), "anything"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestReferenceYear(t *testing.T) {
	if got := (Reference{ReleaseDate: "1999-03-31"}).Year(); got != "1999" {
		t.Fatalf("unexpected year %q", got)
	}
	if got := (Reference{}).Year(); got != "" {
		t.Fatalf("expected empty year, got %q", got)
	}
}
