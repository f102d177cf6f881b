package organize

import (
	"snapsort/internal/library"
	"snapsort/internal/resolve"
)

// Summary accumulates per-file outcomes for one run. It is a plain value
// owned and returned by the run loop; callers merge or render it as needed.
type Summary struct {
	Processed       int
	Moved           int
	Skipped         int
	Failed          int
	WithMetadata    int
	WithoutMetadata int
	DryRun          bool
}

// Record counts one file. Metadata classification depends only on the date's
// provenance, independent of the move outcome.
func (s *Summary) Record(source resolve.Source, outcome library.Outcome) {
	s.Processed++
	switch {
	case outcome == library.OutcomeMoved:
		s.Moved++
	case outcome.Skipped():
		s.Skipped++
	case outcome.Failed():
		s.Failed++
	}
	if source.FromMetadata() {
		s.WithMetadata++
	} else {
		s.WithoutMetadata++
	}
}
