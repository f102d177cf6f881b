//go:build darwin

package scan

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime returns the file's birth time, which APFS and HFS+ record.
func creationTime(path string, info fs.FileInfo) time.Time {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err == nil {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
