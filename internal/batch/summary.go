package batch

import (
	"math"

	"slate/internal/resolve"
)

// Summary aggregates a completed result list.
type Summary struct {
	Total       int
	Exact       int
	Fuzzy       int
	NotFound    int
	Errors      int
	SuccessRate int
}

// Summarize derives a Summary from results. It is a pure function: no
// resolver calls, no side effects. SuccessRate is the rounded integer
// percentage of exact plus fuzzy matches, 0 for an empty list.
func Summarize(results []resolve.Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case resolve.StatusExact:
			summary.Exact++
		case resolve.StatusFuzzy:
			summary.Fuzzy++
		case resolve.StatusNotFound:
			summary.NotFound++
		case resolve.StatusError:
			summary.Errors++
		}
	}
	if summary.Total > 0 {
		matched := float64(summary.Exact + summary.Fuzzy)
		summary.SuccessRate = int(math.Round(matched * 100 / float64(summary.Total)))
	}
	return summary
}
