// Package config loads, normalizes, and validates snapsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the CLI needs: the
// state/log directory, the run-history database location, the overwrite
// policy for collisions in the library, and metadata-reader settings such as
// the ffprobe binary and the plausibility window floor.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation
// errors.
package config
