package organize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"snapsort/internal/config"
	"snapsort/internal/history"
	"snapsort/internal/library"
	"snapsort/internal/logging"
	"snapsort/internal/resolve"
	"snapsort/internal/scan"
	"snapsort/internal/services"
)

// ErrNoMatches indicates the source folder holds no media files. Fatal in
// the sense that nothing runs, but it is an empty result, not a fault.
var ErrNoMatches = errors.New("no media files found")

// Options configures one run.
type Options struct {
	Source string
	DryRun bool
}

// Result is the run summary plus the identifier under which the run was
// journaled.
type Result struct {
	RunID   string
	Summary Summary
}

// Runner executes the organize pipeline.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	chain   *resolve.Chain
	journal *history.Store
	now     func() time.Time
}

// NewRunner constructs the pipeline with default dependencies. The journal
// may be nil; runs then go unrecorded.
func NewRunner(cfg *config.Config, logger *slog.Logger, journal *history.Store) *Runner {
	return NewRunnerWithDependencies(cfg, logger, resolve.NewChain(cfg, logger), journal, time.Now)
}

// NewRunnerWithDependencies allows injecting collaborators (used in tests).
func NewRunnerWithDependencies(cfg *config.Config, logger *slog.Logger, chain *resolve.Chain, journal *history.Store, now func() time.Time) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Runner{
		cfg:     cfg,
		logger:  logger.With(logging.String(logging.FieldComponent, "organize")),
		chain:   chain,
		journal: journal,
		now:     now,
	}
}

// Run processes every media file directly under opts.Source. It returns an
// error only for run-level conditions: invalid source, empty match set, or
// a concurrent run holding the lock. Per-file failures are reflected in the
// summary counters.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)
	startedAt := r.now()

	files, err := scan.Enumerate(opts.Source)
	if err != nil {
		return Result{RunID: runID}, err
	}
	if len(files) == 0 {
		return Result{RunID: runID}, fmt.Errorf("%w in %s", ErrNoMatches, opts.Source)
	}

	unlock, err := r.acquireLock()
	if err != nil {
		return Result{RunID: runID}, err
	}
	defer unlock()

	root := filepath.Dir(files[0].Path)
	logger.Info("starting organize run",
		logging.String("source", root),
		logging.Int("files", len(files)),
		logging.Bool("dry_run", opts.DryRun),
	)

	mover := library.NewMover(r.cfg.Library.OverwriteExisting, opts.DryRun, r.logger)
	summary := Summary{DryRun: opts.DryRun}
	records := make([]history.FileRecord, 0, len(files))

	for _, file := range files {
		fileCtx := services.WithFile(ctx, file.Path)
		resolution, result := r.processFile(fileCtx, mover, root, file)

		summary.Record(resolution.Source, result.Outcome)
		records = append(records, history.FileRecord{
			SourcePath:   file.Path,
			TargetPath:   result.Target,
			ResolvedDate: resolution.Date,
			DateSource:   string(resolution.Source),
			Outcome:      string(result.Outcome),
		})

		if result.Outcome.Failed() {
			logging.WithContext(fileCtx, r.logger).Warn("file not relocated",
				logging.String("outcome", string(result.Outcome)),
				logging.Error(result.Err),
			)
		}
	}

	r.recordRun(ctx, history.Run{
		ID:              runID,
		SourceRoot:      root,
		DryRun:          opts.DryRun,
		StartedAt:       startedAt,
		FinishedAt:      r.now(),
		Processed:       summary.Processed,
		Moved:           summary.Moved,
		Skipped:         summary.Skipped,
		Failed:          summary.Failed,
		WithMetadata:    summary.WithMetadata,
		WithoutMetadata: summary.WithoutMetadata,
	}, records)

	logger.Info("organize run completed",
		logging.Int("processed", summary.Processed),
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return Result{RunID: runID, Summary: summary}, nil
}

// processFile resolves and relocates one file. A panic inside the resolver
// or mover is contained here so a single bad file cannot abort the run.
func (r *Runner) processFile(ctx context.Context, mover *library.Mover, root string, file scan.MediaFile) (resolution resolve.Resolution, result library.MoveResult) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.WithContext(ctx, r.logger).Error("panic while processing file",
				logging.Any("panic", rec),
			)
			result = library.MoveResult{Outcome: library.OutcomeError, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	resolution = r.chain.Resolve(ctx, file)
	destDir := library.DestinationDir(root, resolution.Date)
	result = mover.Move(ctx, file.Path, destDir)
	return resolution, result
}

// acquireLock serializes organize runs on this machine. Dry runs take the
// lock too so a simulation never interleaves with a real run.
func (r *Runner) acquireLock() (func(), error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organize", "ensure state dir", "cannot create state directory", err)
	}
	lock := flock.New(r.cfg.LockFilePath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organize", "acquire lock", "cannot acquire run lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "organize", "acquire lock", "another organize run is active", nil)
	}
	return func() { _ = lock.Unlock() }, nil
}

// recordRun journals the run best-effort; a journal failure never fails the run.
func (r *Runner) recordRun(ctx context.Context, run history.Run, records []history.FileRecord) {
	if r.journal == nil {
		return
	}
	if err := r.journal.RecordRun(ctx, run, records); err != nil {
		logging.WithContext(ctx, r.logger).Warn("failed to journal run", logging.Error(err))
	}
}
