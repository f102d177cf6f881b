package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinariesFindsStub(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "fakeprobe")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)

	statuses := CheckBinaries([]Requirement{{Name: "ffprobe", Command: "fakeprobe", Optional: true}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected stub to be found: %+v", statuses[0])
	}
}

func TestCheckBinariesReportsMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	statuses := CheckBinaries([]Requirement{
		{Name: "ffprobe", Command: "definitely-not-present"},
		{Name: "unconfigured", Command: ""},
	})
	if statuses[0].Available {
		t.Fatal("expected missing binary")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected status for unconfigured command: %+v", statuses[1])
	}
}

func TestRequirementsUsesConfiguredBinary(t *testing.T) {
	reqs := Requirements(nil)
	if len(reqs) != 1 || reqs[0].Command != "ffprobe" {
		t.Fatalf("unexpected default requirements: %+v", reqs)
	}
	if !reqs[0].Optional {
		t.Fatal("ffprobe must be optional")
	}
}
