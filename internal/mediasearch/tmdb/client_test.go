package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slate/internal/mediasearch"
)

func TestClientSearchMapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "The Matrix" {
			t.Fatalf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Fatalf("unexpected api key %q", got)
		}
		payload := Response{
			Page: 1,
			Results: []Result{
				{ID: 603, Title: "The Matrix", MediaType: "movie", ReleaseDate: "1999-03-31"},
				{ID: 100, Name: "The Matrix Show", MediaType: "tv", FirstAirDate: "2003-05-01"},
				{ID: 7, Name: "Keanu Reeves", MediaType: "person"},
			},
			TotalResults: 3,
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client, err := New("test-key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	refs, err := client.Search(context.Background(), "The Matrix")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected person result filtered, got %d references", len(refs))
	}
	if refs[0].ID != 603 || refs[0].Title != "The Matrix" || refs[0].MediaType != "movie" {
		t.Fatalf("unexpected first reference: %+v", refs[0])
	}
	if refs[1].Title != "The Matrix Show" || refs[1].ReleaseDate != "2003-05-01" {
		t.Fatalf("tv name/first_air_date not mapped: %+v", refs[1])
	}
	if refs[0].Year() != "1999" {
		t.Fatalf("unexpected year %q", refs[0].Year())
	}
}

func TestClientSearchRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status_message":"request count over limit"}`))
	}))
	defer server.Close()

	client, err := New("test-key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for throttled response")
	}
	var statusErr *mediasearch.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status code %d", statusErr.StatusCode)
	}
	if statusErr.RetryAfter != 2*time.Second {
		t.Fatalf("unexpected retry-after %v", statusErr.RetryAfter)
	}
	if !mediasearch.IsRateLimited(err) {
		t.Fatal("throttled response not classified as rate limited")
	}
}

func TestClientSearchEmptyQuery(t *testing.T) {
	client, err := New("test-key", "https://example.invalid", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New("", "https://example.invalid", ""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := New("key", "", ""); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
