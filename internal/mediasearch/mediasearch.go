package mediasearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Reference is a single candidate returned by a search provider. Resolution
// treats it as an opaque record; only Title is required to be usable.
type Reference struct {
	ID          int64
	Title       string
	MediaType   string
	ReleaseDate string
	PosterPath  string
	Overview    string
}

// Year returns the four-digit release year, or an empty string when the
// release date is missing or malformed.
func (r Reference) Year() string {
	date := strings.TrimSpace(r.ReleaseDate)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Searcher performs a single title lookup against an external provider.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Reference, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string) ([]Reference, error)

func (f SearcherFunc) Search(ctx context.Context, query string) ([]Reference, error) {
	return f(ctx, query)
}

// StatusError reports a non-success HTTP response from a provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s search returned %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s search returned %d: %s", e.Provider, e.StatusCode, body)
}

// IsRateLimited reports whether err signals provider throttling. A structured
// StatusError with HTTP 429 is the primary signal; the message-text check
// remains as a fallback for collaborators that only surface strings.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}
