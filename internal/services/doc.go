// Package services defines the shared error taxonomy and context helpers used
// across the organize pipeline.
//
// Errors are tagged with sentinel markers via Wrap so the run loop can
// distinguish fatal conditions (invalid source, bad configuration) from
// per-file failures that only affect a single outcome. Context helpers carry
// the run identifier and current file so log lines stay correlated without
// threading extra parameters through every call.
package services
