package main

import (
	"path/filepath"
	"testing"
	"time"

	"snapsort/internal/testsupport"
)

func TestHistoryListsCompletedRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "inbox")
	testsupport.WriteFileWithModTime(t, filepath.Join(source, "photo.jpg"), time.Date(2022, time.May, 1, 10, 0, 0, 0, time.Local))

	if _, _, err := runCLI(t, []string{"organize", source}, env.configPath, ""); err != nil {
		t.Fatalf("organize: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, stdout, source)
	requireContains(t, stdout, "move")
}

func TestHistoryWithEmptyJournal(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, stdout, "No runs recorded yet.")
}
