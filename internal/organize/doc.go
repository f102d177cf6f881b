// Package organize drives the per-file pipeline: enumerate, resolve a date,
// build the destination, move (or simulate), and count the outcome.
//
// Processing is strictly sequential; one file completes before the next
// starts. The only fatal conditions are an invalid source folder and an
// empty match set; every other failure is recorded against its file and the
// run continues. A file lock in the state directory keeps two organize runs
// from interleaving; interrupting a run is safe because completed moves stay
// moved and a re-run skips them.
package organize
