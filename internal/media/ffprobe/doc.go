// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no snapsort-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing format metadata and tags
//   - Format: container-level metadata (duration, size, tag map)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result provide case-insensitive tag lookup and access to
// the container-embedded encode/creation timestamps.
package ffprobe
