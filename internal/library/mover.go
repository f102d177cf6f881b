package library

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"snapsort/internal/logging"
)

// MoveResult reports what happened to one file.
type MoveResult struct {
	Outcome Outcome
	Target  string
	Err     error
}

// Mover relocates files with pre/post verification. All failures are
// per-file: they are reported in the MoveResult and never propagate.
type Mover struct {
	overwrite bool
	dryRun    bool
	logger    *slog.Logger
}

// NewMover constructs a mover. With overwrite disabled a same-named file at
// the destination is a per-file failure instead of being replaced.
func NewMover(overwrite, dryRun bool, logger *slog.Logger) *Mover {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Mover{
		overwrite: overwrite,
		dryRun:    dryRun,
		logger:    logger.With(logging.String(logging.FieldComponent, "mover")),
	}
}

// Move relocates src into destDir, keeping the base name. The checks run in
// a fixed order: already-in-place, dry-run, destination directory creation,
// source existence, collision policy, rename (with cross-device copy
// fallback), post-move verification.
func (m *Mover) Move(ctx context.Context, src, destDir string) MoveResult {
	logger := logging.WithContext(ctx, m.logger)
	target := filepath.Join(destDir, filepath.Base(src))

	if src == target {
		logger.Debug("file already at destination", logging.String("target", target))
		return MoveResult{Outcome: OutcomeAlreadyInPlace, Target: target}
	}

	if m.dryRun {
		logger.Info("dry run: would move file", logging.String("target", target))
		return MoveResult{Outcome: OutcomeDryRun, Target: target}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		logger.Warn("cannot create destination directory", logging.Error(err))
		return MoveResult{Outcome: OutcomeError, Target: target, Err: err}
	}

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("source vanished before move")
			return MoveResult{Outcome: OutcomeSourceMissing, Target: target}
		}
		logger.Warn("cannot inspect source", logging.Error(err))
		return MoveResult{Outcome: OutcomeError, Target: target, Err: err}
	}

	if !m.overwrite {
		if _, err := os.Stat(target); err == nil {
			logger.Warn("destination already occupied", logging.String("target", target))
			return MoveResult{Outcome: OutcomeDestinationExists, Target: target}
		} else if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot inspect destination", logging.Error(err))
			return MoveResult{Outcome: OutcomeError, Target: target, Err: err}
		}
	}

	if err := m.relocate(src, target); err != nil {
		logger.Warn("move failed; source left in place", logging.Error(err))
		return MoveResult{Outcome: OutcomeError, Target: target, Err: err}
	}

	if err := verifyMove(src, target); err != nil {
		logger.Warn("post-move verification failed", logging.Error(err))
		return MoveResult{Outcome: OutcomeVerificationFailed, Target: target, Err: err}
	}

	logger.Info("file moved", logging.String("target", target))
	return MoveResult{Outcome: OutcomeMoved, Target: target}
}

// relocate renames src to target, falling back to copy+remove across
// filesystem boundaries. The source is removed only after the copy fully
// succeeds so an interrupted move never loses the file.
func (m *Mover) relocate(src, target string) error {
	err := os.Rename(src, target)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := copyFile(src, target); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}

func verifyMove(src, target string) error {
	if _, err := os.Stat(target); err != nil {
		return errors.New("destination missing after move")
	}
	if _, err := os.Stat(src); err == nil {
		return errors.New("source still present after move")
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		// Remove the partial copy so a retry starts clean.
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
