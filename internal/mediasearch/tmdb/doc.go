// Package tmdb provides the TMDB API client used for batch title
// resolution.
//
// It authenticates requests, performs multi search (movies and TV in one
// call), and maps the typed response payload onto mediasearch references in
// provider rank order. Throttled responses surface as structured status
// errors carrying any Retry-After hint. Options allow tests to supply
// custom HTTP clients without modifying production code.
package tmdb
