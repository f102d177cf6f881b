package resolve

import (
	"context"
	"log/slog"
	"time"

	"snapsort/internal/config"
	"snapsort/internal/logging"
	"snapsort/internal/scan"
)

// Source records which strategy produced the accepted date.
type Source string

const (
	SourceEXIF          Source = "exif"
	SourceVideoMetadata Source = "video_metadata"
	SourceCreationTime  Source = "creation_time"
	SourceLastWriteTime Source = "last_write_time"
)

// FromMetadata reports whether the source is embedded metadata rather than a
// filesystem timestamp.
func (s Source) FromMetadata() bool {
	return s == SourceEXIF || s == SourceVideoMetadata
}

// Resolution is the accepted date plus its provenance. Every file gets one;
// the chain degrades to filesystem timestamps rather than failing.
type Resolution struct {
	Date   time.Time
	Source Source
}

// Strategy is one method of deriving a date from a file. Attempt returns
// ok=false to pass the file to the next strategy; it must not fail outward.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, file scan.MediaFile) (Resolution, bool)
}

// Chain drives an ordered strategy list. First success wins; no
// reconciliation is attempted between strategies that would disagree.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
	now        func() time.Time
}

// NewChain builds the default strategy order from configuration: EXIF for
// images, container tags for videos, filesystem timestamps as the terminal
// fallback.
func NewChain(cfg *config.Config, logger *slog.Logger) *Chain {
	now := time.Now
	strategies := []Strategy{
		&exifStrategy{read: readEXIFDate},
		&videoStrategy{
			probe:          probeVideoDates(cfg.FFprobeBinary(), cfg.FFprobeTimeout()),
			plausibleAfter: cfg.PlausibleAfter(),
			now:            now,
		},
		&fileTimeStrategy{},
	}
	return NewChainWithStrategies(logger, now, strategies...)
}

// NewChainWithStrategies allows injecting strategies (used in tests).
func NewChainWithStrategies(logger *slog.Logger, now func() time.Time, strategies ...Strategy) *Chain {
	if logger == nil {
		logger = logging.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Chain{
		strategies: strategies,
		logger:     logger.With(logging.String(logging.FieldComponent, "resolver")),
		now:        now,
	}
}

// Resolve returns exactly one Resolution for the file. Strategies that
// cannot produce a date are skipped silently; the filesystem fallback
// guarantees a result.
func (c *Chain) Resolve(ctx context.Context, file scan.MediaFile) Resolution {
	logger := logging.WithContext(ctx, c.logger)

	var accepted Resolution
	var found bool
	for _, strategy := range c.strategies {
		res, ok := strategy.Attempt(ctx, file)
		if !ok {
			continue
		}
		logger.Debug("strategy accepted",
			logging.String("strategy", strategy.Name()),
			logging.String("source", string(res.Source)),
			logging.Time("date", res.Date),
		)
		accepted = res
		found = true
		break
	}
	if !found {
		// Unreachable with the default list; the filesystem strategy always
		// succeeds. Guard against an injected empty chain anyway.
		accepted = Resolution{Date: file.WrittenAt, Source: SourceLastWriteTime}
	}

	if sameDay(accepted.Date, c.now()) {
		logger.Warn("resolved date is today; file metadata may be missing",
			logging.String("source", string(accepted.Source)),
		)
	}
	return accepted
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
