// Package logging builds the slog loggers used across Slate.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component prefix, key=value attributes) and JSON for
// machine consumption. Attr helpers and standardized field keys keep
// structured logs consistent between packages. NewNop returns a logger
// that discards everything, for tests and optional wiring.
package logging
