package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"snapsort/internal/services"
)

// Kind classifies a media file by its extension family.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {},
	".tiff": {}, ".heic": {}, ".raw": {}, ".cr2": {}, ".nef": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {}, ".wmv": {}, ".flv": {},
	".m4v": {}, ".mpg": {}, ".mpeg": {}, ".3gp": {}, ".webm": {},
}

// MediaFile is an immutable snapshot of one candidate file taken at
// enumeration time.
type MediaFile struct {
	Path      string
	Name      string
	Extension string
	Kind      Kind
	CreatedAt time.Time
	WrittenAt time.Time
}

// EarliestTimestamp returns the older of the creation and last-write times.
// Copies and moves can bump one of the two but rarely both, so the older one
// is the better acquisition estimate.
func (f MediaFile) EarliestTimestamp() (time.Time, bool) {
	if f.CreatedAt.Before(f.WrittenAt) {
		return f.CreatedAt, true
	}
	return f.WrittenAt, false
}

// KindForExtension classifies a lowercased extension (with leading dot).
// The boolean reports whether the extension belongs to a known media family.
func KindForExtension(ext string) (Kind, bool) {
	if _, ok := imageExtensions[ext]; ok {
		return KindImage, true
	}
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo, true
	}
	return "", false
}

// Enumerate lists the media files directly under root. The root must exist
// and be a directory; that is the only fatal condition. Matching is
// case-insensitive and each path appears exactly once.
func Enumerate(root string) ([]MediaFile, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, services.Wrap(services.ErrInvalidSource, "scan", "resolve root", "cannot resolve source folder", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrInvalidSource, "scan", "stat root", fmt.Sprintf("source folder does not exist: %s", root), nil)
		}
		return nil, services.Wrap(services.ErrInvalidSource, "scan", "stat root", "cannot inspect source folder", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrInvalidSource, "scan", "stat root", fmt.Sprintf("source is not a directory: %s", root), nil)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrInvalidSource, "scan", "read root", "cannot list source folder", err)
	}

	seen := make(map[string]struct{}, len(entries))
	files := make([]MediaFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		kind, ok := KindForExtension(ext)
		if !ok {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if _, dup := seen[path]; dup {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and Info; skip it.
			continue
		}
		if !fileInfo.Mode().IsRegular() {
			continue
		}

		seen[path] = struct{}{}
		files = append(files, MediaFile{
			Path:      path,
			Name:      entry.Name(),
			Extension: ext,
			Kind:      kind,
			CreatedAt: creationTime(path, fileInfo),
			WrittenAt: fileInfo.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
