// Package resolve turns one free-text title into a classified search
// outcome.
//
// A Resolver invokes the search collaborator, classifies the candidates
// (exact, fuzzy, not_found, error), and retries transient throttling with
// exponential backoff. All outcomes, including failures, are normalized
// into a Result value; the resolver never raises past its own boundary.
package resolve
