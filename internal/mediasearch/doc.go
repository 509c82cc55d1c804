// Package mediasearch defines the search-provider seam used by title
// resolution.
//
// A Searcher returns candidate references for a free-text query. Concrete
// providers (see the tmdb subpackage) implement the interface; tests
// substitute doubles at the same seam. StatusError carries structured HTTP
// failure details so throttling can be classified without inspecting
// message text, and NewLimitedSearcher routes a provider's traffic through
// a per-provider rate limiter.
package mediasearch
