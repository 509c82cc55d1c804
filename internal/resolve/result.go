package resolve

import "slate/internal/mediasearch"

// Status classifies the outcome of resolving one title.
type Status string

const (
	// StatusExact means a candidate's normalized title equals the
	// normalized query.
	StatusExact Status = "exact"
	// StatusFuzzy means no candidate matched exactly; the provider's
	// first-ranked candidate stands in.
	StatusFuzzy Status = "fuzzy"
	// StatusNotFound means the provider returned zero candidates.
	StatusNotFound Status = "not_found"
	// StatusError means the lookup failed after any retries.
	StatusError Status = "error"
)

// Matched reports whether the status counts toward the batch success rate.
func (s Status) Matched() bool {
	return s == StatusExact || s == StatusFuzzy
}

// maxAlternatives bounds the alternatives kept for user reference.
const maxAlternatives = 5

// Result is the immutable outcome of resolving one title. Matched is set
// for exact and fuzzy statuses; ErrorMessage is set for error status.
type Result struct {
	Query        string
	Status       Status
	Matched      *mediasearch.Reference
	Alternatives []mediasearch.Reference
	ErrorMessage string
}
