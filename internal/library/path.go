package library

import (
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthCaser = cases.Upper(language.English)

// MonthFolder returns the "MM_MON" folder name for a date: zero-padded month
// number plus the upper-cased three-letter English month abbreviation.
func MonthFolder(date time.Time) string {
	return fmt.Sprintf("%02d_%s", int(date.Month()), monthCaser.String(date.Format("Jan")))
}

// DestinationDir maps a resolved date to its target directory under root.
// Pure and deterministic: the same date always yields a byte-identical path.
func DestinationDir(root string, date time.Time) string {
	return filepath.Join(root, fmt.Sprintf("%04d", date.Year()), MonthFolder(date))
}

// DestinationPath returns the full target path for a named file.
func DestinationPath(root string, date time.Time, name string) string {
	return filepath.Join(DestinationDir(root, date), name)
}
