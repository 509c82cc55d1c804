// Package ratelimit provides a named FIFO work queue that dispatches
// asynchronous work one item at a time with a minimum interval between
// dispatch starts.
//
// One Limiter exists per external provider. Work submitted by independent
// callers executes strictly in submission order, never more than one at a
// time. A failing work item reports its failure only to its own caller's
// ticket; it does not abort the drain loop or affect sibling items. Two
// Limiter instances never block each other.
package ratelimit
