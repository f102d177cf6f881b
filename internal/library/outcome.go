package library

// Outcome classifies the result of one attempted relocation.
type Outcome string

const (
	// OutcomeMoved means the file now lives at the destination.
	OutcomeMoved Outcome = "moved"
	// OutcomeAlreadyInPlace means the source already equals the destination.
	OutcomeAlreadyInPlace Outcome = "already_in_place"
	// OutcomeDryRun means the move was simulated only.
	OutcomeDryRun Outcome = "dry_run"
	// OutcomeSourceMissing means the file vanished between enumeration and move.
	OutcomeSourceMissing Outcome = "source_missing"
	// OutcomeDestinationExists means a same-named file occupies the
	// destination and overwriting is disabled.
	OutcomeDestinationExists Outcome = "destination_exists"
	// OutcomeVerificationFailed means the post-move check found the
	// destination absent or the source still present.
	OutcomeVerificationFailed Outcome = "verification_failed"
	// OutcomeError means an unexpected filesystem error interrupted the move.
	OutcomeError Outcome = "error"
)

// Skipped reports whether the outcome left the filesystem untouched by intent.
func (o Outcome) Skipped() bool {
	return o == OutcomeAlreadyInPlace || o == OutcomeDryRun
}

// Failed reports whether the outcome represents a per-file failure.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeSourceMissing, OutcomeDestinationExists, OutcomeVerificationFailed, OutcomeError:
		return true
	}
	return false
}
