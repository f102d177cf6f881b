package history

import "time"

// Run summarizes one organize invocation.
type Run struct {
	ID              string
	SourceRoot      string
	DryRun          bool
	StartedAt       time.Time
	FinishedAt      time.Time
	Processed       int
	Moved           int
	Skipped         int
	Failed          int
	WithMetadata    int
	WithoutMetadata int
}

// FileRecord captures the resolution and outcome for one file in a run.
type FileRecord struct {
	SourcePath   string
	TargetPath   string
	ResolvedDate time.Time
	DateSource   string
	Outcome      string
}
