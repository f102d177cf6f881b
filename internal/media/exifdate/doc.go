// Package exifdate reads the original capture timestamp embedded in image
// files.
//
// It exposes a single narrow contract: given a path, return the
// DateTimeOriginal value or an error. Callers treat any error as "no
// embedded date" and fall through to the next resolution strategy.
package exifdate
