package exifdate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// timestampLayout is the EXIF Ascii timestamp format.
const timestampLayout = "2006:01:02 15:04:05"

// ErrNoDate indicates the file carries no usable DateTimeOriginal tag.
var ErrNoDate = errors.New("no embedded capture date")

// Read returns the original capture timestamp recorded in the file's EXIF
// block. Files without EXIF data, without a DateTimeOriginal tag, or with a
// structurally invalid value all yield an error.
func Read(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoDate, err)
	}

	tag, err := data.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, ErrNoDate
	}
	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoDate, err)
	}

	return ParseTimestamp(value)
}

// ParseTimestamp parses an EXIF Ascii timestamp (YYYY:MM:DD HH:MM:SS) in
// local time. Structural mismatches yield an error so callers can fall
// through to the next strategy.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.ParseInLocation(timestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed timestamp %q", ErrNoDate, value)
	}
	return parsed, nil
}
