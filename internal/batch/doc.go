// Package batch drives a list of titles through the resolver sequentially,
// reporting progress and collecting results.
//
// Titles are processed strictly in input order with a fixed pacing delay
// between items; results come back in that same order. A per-item failure
// never aborts the batch. Summarize derives aggregate counts from a
// completed result list.
package batch
