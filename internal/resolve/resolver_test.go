package resolve

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"snapsort/internal/scan"
	"snapsort/internal/services"
	"snapsort/internal/testsupport"
)

var testNow = func() time.Time {
	return time.Date(2024, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func imageFile(created, written time.Time) scan.MediaFile {
	return scan.MediaFile{
		Path: "/media/photo.jpg", Name: "photo.jpg", Extension: ".jpg",
		Kind: scan.KindImage, CreatedAt: created, WrittenAt: written,
	}
}

func videoFile(created, written time.Time) scan.MediaFile {
	return scan.MediaFile{
		Path: "/media/clip.mp4", Name: "clip.mp4", Extension: ".mp4",
		Kind: scan.KindVideo, CreatedAt: created, WrittenAt: written,
	}
}

func TestEXIFStrategyWinsForImages(t *testing.T) {
	captured := time.Date(2021, time.March, 15, 10, 0, 0, 0, time.Local)
	chain := NewChainWithStrategies(nil, testNow,
		&exifStrategy{read: func(string) (time.Time, error) { return captured, nil }},
		&fileTimeStrategy{},
	)

	res := chain.Resolve(context.Background(), imageFile(testNow(), testNow()))
	if res.Source != SourceEXIF {
		t.Fatalf("expected exif source, got %s", res.Source)
	}
	if !res.Date.Equal(captured) {
		t.Fatalf("expected %v, got %v", captured, res.Date)
	}
}

func TestEXIFFailureFallsThrough(t *testing.T) {
	created := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	written := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	chain := NewChainWithStrategies(nil, testNow,
		&exifStrategy{read: func(string) (time.Time, error) { return time.Time{}, errors.New("no exif") }},
		&fileTimeStrategy{},
	)

	res := chain.Resolve(context.Background(), imageFile(created, written))
	if res.Source != SourceCreationTime {
		t.Fatalf("expected creation time source, got %s", res.Source)
	}
	if !res.Date.Equal(created) {
		t.Fatalf("expected %v, got %v", created, res.Date)
	}
}

func TestEXIFStrategySkipsVideos(t *testing.T) {
	strategy := &exifStrategy{read: func(string) (time.Time, error) {
		t.Fatal("exif reader must not run for videos")
		return time.Time{}, nil
	}}
	if _, ok := strategy.Attempt(context.Background(), videoFile(testNow(), testNow())); ok {
		t.Fatal("expected strategy to pass on videos")
	}
}

func TestVideoStrategyPriorityAndWindow(t *testing.T) {
	floor := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	encoded := time.Date(2019, time.May, 4, 10, 0, 0, 0, time.UTC)
	created := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		dates  videoDates
		want   time.Time
		wantOK bool
	}{
		{
			name:   "encoded wins over created",
			dates:  videoDates{encoded: encoded, hasEncoded: true, created: created, hasCreated: true},
			want:   encoded,
			wantOK: true,
		},
		{
			name:   "implausible encoded falls to created",
			dates:  videoDates{encoded: time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), hasEncoded: true, created: created, hasCreated: true},
			want:   created,
			wantOK: true,
		},
		{
			name:   "future created rejected",
			dates:  videoDates{created: testNow().Add(24 * time.Hour), hasCreated: true},
			wantOK: false,
		},
		{
			name:   "no tags",
			dates:  videoDates{},
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strategy := &videoStrategy{
				probe:          func(context.Context, string) (videoDates, error) { return tc.dates, nil },
				plausibleAfter: floor,
				now:            testNow,
			}
			res, ok := strategy.Attempt(context.Background(), videoFile(testNow(), testNow()))
			if ok != tc.wantOK {
				t.Fatalf("ok=%v, want %v", ok, tc.wantOK)
			}
			if ok {
				if res.Source != SourceVideoMetadata {
					t.Fatalf("unexpected source %s", res.Source)
				}
				if !res.Date.Equal(tc.want) {
					t.Fatalf("got %v, want %v", res.Date, tc.want)
				}
			}
		})
	}
}

func TestVideoProbeErrorFallsThrough(t *testing.T) {
	created := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	written := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	chain := NewChainWithStrategies(nil, testNow,
		&videoStrategy{
			probe:          func(context.Context, string) (videoDates, error) { return videoDates{}, errors.New("ffprobe missing") },
			plausibleAfter: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			now:            testNow,
		},
		&fileTimeStrategy{},
	)

	res := chain.Resolve(context.Background(), videoFile(created, written))
	if res.Source != SourceCreationTime || !res.Date.Equal(created) {
		t.Fatalf("expected creation-time fallback, got %+v", res)
	}
}

func TestChainAcceptsVideoDateFromProbeBinary(t *testing.T) {
	payload := `{"format": {"filename": "clip.mp4", "format_name": "mov,mp4,m4a", "tags": {"creation_time": "2019-05-04T10:00:00.000000Z"}}}`
	cfg := testsupport.NewConfig(t, testsupport.WithFFprobeBinary(testsupport.StubFFprobe(t, payload)))
	chain := NewChain(cfg, nil)

	res := chain.Resolve(context.Background(), videoFile(testNow(), testNow()))
	if res.Source != SourceVideoMetadata {
		t.Fatalf("expected video metadata source, got %s", res.Source)
	}
	want := time.Date(2019, time.May, 4, 10, 0, 0, 0, time.UTC)
	if !res.Date.Equal(want) {
		t.Fatalf("got %v, want %v", res.Date, want)
	}
}

func TestChainFallsBackWhenProbeBinaryMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFFprobeBinary(filepath.Join(t.TempDir(), "no-such-ffprobe")))
	chain := NewChain(cfg, nil)

	created := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	written := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	res := chain.Resolve(context.Background(), videoFile(created, written))
	if res.Source != SourceCreationTime || !res.Date.Equal(created) {
		t.Fatalf("expected creation-time fallback, got %+v", res)
	}
}

func TestProbeFailureCarriesExternalToolMarker(t *testing.T) {
	probe := probeVideoDates(filepath.Join(t.TempDir(), "no-such-ffprobe"), time.Second)
	_, err := probe(context.Background(), "/media/clip.mp4")
	if err == nil {
		t.Fatal("expected probe to fail for a missing binary")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestFileTimeStrategyPicksOlderTimestamp(t *testing.T) {
	older := time.Date(2015, time.April, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2018, time.April, 1, 0, 0, 0, 0, time.UTC)

	res, ok := (&fileTimeStrategy{}).Attempt(context.Background(), scan.MediaFile{CreatedAt: newer, WrittenAt: older})
	if !ok {
		t.Fatal("file time strategy must always succeed")
	}
	if res.Source != SourceLastWriteTime || !res.Date.Equal(older) {
		t.Fatalf("expected last-write %v, got %+v", older, res)
	}
}

func TestResolveNeverFails(t *testing.T) {
	// Even an empty injected chain must produce a resolution.
	written := time.Date(2012, time.December, 1, 0, 0, 0, 0, time.UTC)
	chain := NewChainWithStrategies(nil, testNow)
	res := chain.Resolve(context.Background(), scan.MediaFile{WrittenAt: written})
	if !res.Date.Equal(written) || res.Source != SourceLastWriteTime {
		t.Fatalf("unexpected guard resolution: %+v", res)
	}
}

func TestSourceFromMetadata(t *testing.T) {
	if !SourceEXIF.FromMetadata() || !SourceVideoMetadata.FromMetadata() {
		t.Fatal("embedded sources must classify as metadata")
	}
	if SourceCreationTime.FromMetadata() || SourceLastWriteTime.FromMetadata() {
		t.Fatal("filesystem sources must not classify as metadata")
	}
}
