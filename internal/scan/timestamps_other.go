//go:build !linux && !darwin

package scan

import (
	"io/fs"
	"time"
)

// creationTime falls back to the last-write time on platforms without a
// portable birth-time source; the earliest-timestamp fallback then collapses
// to the modification time.
func creationTime(_ string, info fs.FileInfo) time.Time {
	return info.ModTime()
}
