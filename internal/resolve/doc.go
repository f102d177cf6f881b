// Package resolve derives a canonical acquisition date for a media file.
//
// Resolution runs an ordered list of strategies and accepts the first one
// that produces a timestamp: embedded EXIF capture date for images,
// container-embedded encode/creation tags for videos (gated by a
// plausibility window), and finally the older of the file's filesystem
// timestamps. The chain never fails outward; strategy errors are swallowed
// and the next strategy is tried, so every file resolves to exactly one
// date with a provenance tag.
package resolve
