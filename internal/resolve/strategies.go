package resolve

import (
	"context"
	"time"

	"snapsort/internal/media/exifdate"
	"snapsort/internal/media/ffprobe"
	"snapsort/internal/scan"
	"snapsort/internal/services"
)

// exifStrategy reads the embedded capture date from image files.
type exifStrategy struct {
	read func(path string) (time.Time, error)
}

func (s *exifStrategy) Name() string { return "exif" }

func (s *exifStrategy) Attempt(_ context.Context, file scan.MediaFile) (Resolution, bool) {
	if file.Kind != scan.KindImage {
		return Resolution{}, false
	}
	ts, err := s.read(file.Path)
	if err != nil {
		return Resolution{}, false
	}
	return Resolution{Date: ts, Source: SourceEXIF}, true
}

func readEXIFDate(path string) (time.Time, error) {
	return exifdate.Read(path)
}

// videoDates carries the container timestamps a probe can surface, in
// descending trust order.
type videoDates struct {
	encoded    time.Time
	hasEncoded bool
	created    time.Time
	hasCreated bool
}

// videoStrategy reads container-embedded dates from video files. Values
// outside the plausibility window are rejected so obviously bogus muxer
// defaults (epoch zero, far future) never win over filesystem timestamps.
type videoStrategy struct {
	probe          func(ctx context.Context, path string) (videoDates, error)
	plausibleAfter time.Time
	now            func() time.Time
}

func (s *videoStrategy) Name() string { return "video_tags" }

func (s *videoStrategy) Attempt(ctx context.Context, file scan.MediaFile) (Resolution, bool) {
	if file.Kind != scan.KindVideo || s.probe == nil {
		return Resolution{}, false
	}
	dates, err := s.probe(ctx, file.Path)
	if err != nil {
		return Resolution{}, false
	}
	if dates.hasEncoded && s.plausible(dates.encoded) {
		return Resolution{Date: dates.encoded, Source: SourceVideoMetadata}, true
	}
	if dates.hasCreated && s.plausible(dates.created) {
		return Resolution{Date: dates.created, Source: SourceVideoMetadata}, true
	}
	return Resolution{}, false
}

func (s *videoStrategy) plausible(ts time.Time) bool {
	if ts.Before(s.plausibleAfter) {
		return false
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return !ts.After(now())
}

func probeVideoDates(binary string, timeout time.Duration) func(ctx context.Context, path string) (videoDates, error) {
	return func(ctx context.Context, path string) (videoDates, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		result, err := ffprobe.Inspect(ctx, binary, path)
		if err != nil {
			return videoDates{}, services.Wrap(services.ErrExternalTool, "resolver", "probe video", "ffprobe invocation failed", err)
		}
		var dates videoDates
		dates.encoded, dates.hasEncoded = result.EncodedDate()
		dates.created, dates.hasCreated = result.CreatedDate()
		return dates, nil
	}
}

// fileTimeStrategy is the terminal fallback: the older of the file's
// creation and last-write timestamps, trusted unconditionally.
type fileTimeStrategy struct{}

func (s *fileTimeStrategy) Name() string { return "file_times" }

func (s *fileTimeStrategy) Attempt(_ context.Context, file scan.MediaFile) (Resolution, bool) {
	ts, fromCreation := file.EarliestTimestamp()
	source := SourceLastWriteTime
	if fromCreation {
		source = SourceCreationTime
	}
	return Resolution{Date: ts, Source: source}, true
}
