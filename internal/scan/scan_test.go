package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snapsort/internal/services"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("media"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateMatchesKnownExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"))
	writeFile(t, filepath.Join(dir, "b.MP4"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	files, err := Enumerate(dir)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "a.jpg" || files[0].Kind != KindImage || files[0].Extension != ".jpg" {
		t.Fatalf("unexpected first file: %+v", files[0])
	}
	if files[1].Name != "b.MP4" || files[1].Kind != KindVideo || files[1].Extension != ".mp4" {
		t.Fatalf("unexpected second file: %+v", files[1])
	}
	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Fatalf("expected absolute path, got %q", f.Path)
		}
		if f.WrittenAt.IsZero() || f.CreatedAt.IsZero() {
			t.Fatalf("expected timestamps to be populated: %+v", f)
		}
	}
}

func TestEnumerateIsNonRecursive(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "2021", "03_MAR")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(nested, "deep.jpg"))
	writeFile(t, filepath.Join(dir, "top.jpg"))

	files, err := Enumerate(dir)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(files) != 1 || files[0].Name != "top.jpg" {
		t.Fatalf("expected only the top-level file, got %+v", files)
	}
}

func TestEnumerateDeduplicates(t *testing.T) {
	// Every name appears exactly once even though the extension sets could
	// both claim it through case variants.
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo.JPeG"))

	files, err := Enumerate(dir)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(files))
	}
}

func TestEnumerateInvalidRoot(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, services.ErrInvalidSource) {
		t.Fatalf("expected invalid source marker, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "file.jpg")
	writeFile(t, file)
	if _, err := Enumerate(file); !errors.Is(err, services.ErrInvalidSource) {
		t.Fatalf("expected invalid source for non-directory, got %v", err)
	}
}

func TestEarliestTimestamp(t *testing.T) {
	created := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	written := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

	f := MediaFile{CreatedAt: created, WrittenAt: written}
	ts, fromCreation := f.EarliestTimestamp()
	if !fromCreation || !ts.Equal(created) {
		t.Fatalf("expected creation time to win: ts=%v fromCreation=%v", ts, fromCreation)
	}

	f = MediaFile{CreatedAt: written, WrittenAt: created}
	ts, fromCreation = f.EarliestTimestamp()
	if fromCreation || !ts.Equal(created) {
		t.Fatalf("expected write time to win: ts=%v fromCreation=%v", ts, fromCreation)
	}
}

func TestKindForExtension(t *testing.T) {
	if kind, ok := KindForExtension(".heic"); !ok || kind != KindImage {
		t.Fatalf("heic: %v %v", kind, ok)
	}
	if kind, ok := KindForExtension(".webm"); !ok || kind != KindVideo {
		t.Fatalf("webm: %v %v", kind, ok)
	}
	if _, ok := KindForExtension(".txt"); ok {
		t.Fatal("txt should not be a media extension")
	}
}
