// Package scan enumerates candidate media files under a source root.
//
// Enumeration is non-recursive, case-insensitive on extension, and yields
// each absolute path exactly once. Every file is captured as an immutable
// MediaFile snapshot (extension, kind, creation and last-write timestamps)
// so later pipeline phases never re-stat the source.
package scan
