package batch

import (
	"context"
	"strings"
	"testing"
	"time"

	"slate/internal/mediasearch"
	"slate/internal/resolve"
)

// scriptedResolver returns a canned result per query.
type scriptedResolver struct {
	results map[string]resolve.Result
	queries []string
}

func (s *scriptedResolver) Resolve(_ context.Context, query string, _ int) resolve.Result {
	s.queries = append(s.queries, query)
	if result, ok := s.results[query]; ok {
		return result
	}
	return resolve.Result{Query: query, Status: resolve.StatusNotFound}
}

func TestRunPreservesInputOrder(t *testing.T) {
	titles := []string{"Fight Club", "Heat", "Alien", "Brazil", "Ran"}
	resolver := &scriptedResolver{results: map[string]resolve.Result{}}
	for _, title := range titles {
		resolver.results[title] = resolve.Result{Query: title, Status: resolve.StatusExact}
	}
	runner := NewRunner(resolver, WithSleeper(func(time.Duration) {}))

	results, err := runner.Run(context.Background(), titles, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != len(titles) {
		t.Fatalf("expected %d results, got %d", len(titles), len(results))
	}
	for i, title := range titles {
		if results[i].Query != title {
			t.Fatalf("result %d out of order: got %q, want %q", i, results[i].Query, title)
		}
	}
}

func TestRunMixedOutcomeScenario(t *testing.T) {
	matched := mediasearch.Reference{ID: 550, Title: "Fight Club"}
	resolver := &scriptedResolver{results: map[string]resolve.Result{
		"Fight Club": {Query: "Fight Club", Status: resolve.StatusExact, Matched: &matched},
		"Not A Real Movie Title 12345": {Query: "Not A Real Movie Title 12345", Status: resolve.StatusNotFound},
		"": {Query: "", Status: resolve.StatusError, ErrorMessage: "query must not be empty"},
	}}
	runner := NewRunner(resolver, WithSleeper(func(time.Duration) {}))

	var progress []Progress
	var streamed []resolve.Result
	titles := []string{"Fight Club", "Not A Real Movie Title 12345", ""}
	results, err := runner.Run(context.Background(), titles, Options{
		Delay:      DefaultDelay,
		MaxRetries: DefaultMaxRetries,
		OnProgress: func(p Progress) { progress = append(progress, p) },
		OnResult:   func(r resolve.Result) { streamed = append(streamed, r) },
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	wantStatuses := []resolve.Status{resolve.StatusExact, resolve.StatusNotFound, resolve.StatusError}
	for i, want := range wantStatuses {
		if results[i].Status != want {
			t.Fatalf("result %d: expected %s, got %s", i, want, results[i].Status)
		}
	}
	if results[2].ErrorMessage == "" {
		t.Fatal("error result must carry its message")
	}

	if len(progress) != 3 {
		t.Fatalf("expected 3 progress callbacks, got %d", len(progress))
	}
	wantPercentages := []int{34, 67, 100}
	for i, want := range wantPercentages {
		if progress[i].Current != i+1 || progress[i].Total != 3 {
			t.Fatalf("progress %d: unexpected position %+v", i, progress[i])
		}
		if progress[i].Percentage != want {
			t.Fatalf("progress %d: expected %d%%, got %d%%", i, want, progress[i].Percentage)
		}
	}

	if len(streamed) != 3 {
		t.Fatalf("expected 3 per-result callbacks, got %d", len(streamed))
	}
	for i := range streamed {
		if streamed[i].Query != results[i].Query {
			t.Fatalf("per-result callback order mismatch at %d", i)
		}
	}

	summary := Summarize(results)
	if summary.SuccessRate != 33 {
		t.Fatalf("expected success rate 33, got %d", summary.SuccessRate)
	}
}

func TestRunFailureContainment(t *testing.T) {
	resolver := &scriptedResolver{results: map[string]resolve.Result{
		"Bad": {Query: "Bad", Status: resolve.StatusError, ErrorMessage: "boom"},
	}}
	runner := NewRunner(resolver, WithSleeper(func(time.Duration) {}))

	results, err := runner.Run(context.Background(), []string{"Bad", "Good"}, Options{})
	if err != nil {
		t.Fatalf("per-item failure must not abort the batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both titles attempted, got %d results", len(results))
	}
	if results[1].Status != resolve.StatusNotFound {
		t.Fatalf("second title should still resolve, got %s", results[1].Status)
	}
}

func TestRunSkipsDelayAfterFinalItem(t *testing.T) {
	resolver := &scriptedResolver{results: map[string]resolve.Result{}}
	var slept []time.Duration
	runner := NewRunner(resolver, WithSleeper(func(d time.Duration) { slept = append(slept, d) }))

	_, err := runner.Run(context.Background(), []string{"a", "b", "c"}, Options{Delay: 300 * time.Millisecond})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(slept) != 2 {
		t.Fatalf("expected 2 pacing delays for 3 items, got %d", len(slept))
	}
	for _, d := range slept {
		if d != 300*time.Millisecond {
			t.Fatalf("unexpected delay %v", d)
		}
	}
}

func TestRunRejectsMalformedOptions(t *testing.T) {
	runner := NewRunner(&scriptedResolver{})
	if _, err := runner.Run(context.Background(), []string{"a"}, Options{Delay: -time.Second}); err == nil {
		t.Fatal("expected error for negative delay")
	}
	if _, err := runner.Run(context.Background(), []string{"a"}, Options{MaxRetries: -1}); err == nil {
		t.Fatal("expected error for negative max retries")
	}
}

func TestRunEmptyInput(t *testing.T) {
	runner := NewRunner(&scriptedResolver{})
	called := false
	results, err := runner.Run(context.Background(), nil, Options{
		OnProgress: func(Progress) { called = true },
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
	if called {
		t.Fatal("no progress expected for an empty batch")
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	resolver := &scriptedResolver{results: map[string]resolve.Result{}}
	runner := NewRunner(resolver, WithSleeper(func(time.Duration) {}))

	cancel()
	results, err := runner.Run(ctx, []string{"a", "b"}, Options{})
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results after early cancel, got %d", len(results))
	}
}

func TestProgressPercentagesMonotonic(t *testing.T) {
	resolver := &scriptedResolver{results: map[string]resolve.Result{}}
	runner := NewRunner(resolver, WithSleeper(func(time.Duration) {}))

	titles := make([]string, 7)
	for i := range titles {
		titles[i] = strings.Repeat("x", i+1)
	}
	var percentages []int
	_, err := runner.Run(context.Background(), titles, Options{
		OnProgress: func(p Progress) { percentages = append(percentages, p.Percentage) },
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for i := 1; i < len(percentages); i++ {
		if percentages[i] < percentages[i-1] {
			t.Fatalf("percentages not monotonic: %v", percentages)
		}
	}
	if percentages[len(percentages)-1] != 100 {
		t.Fatalf("final percentage must be 100, got %v", percentages)
	}
}
