// Package config loads, normalizes, and validates Slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY. The Config type centralizes every knob the CLI needs:
// provider credentials, request pacing, batch defaults, and logging.
package config
