package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Format Format `json:"format"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	Tags       map[string]string `json:"tags"`
}

// encodedDateTags and createdDateTags list the container tag names consulted
// for the "date encoded" and "date created" properties, in priority order.
// Tag spelling varies by muxer: Matroska writes DATE_ENCODED/date, MP4 and
// MOV write creation_time, QuickTime additionally exposes a reverse-DNS key.
var (
	encodedDateTags = []string{"date_encoded", "encoded_date", "date"}
	createdDateTags = []string{"creation_time", "com.apple.quicktime.creationdate", "date_created"}
)

// timestampLayouts covers the timestamp spellings observed across muxers.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	"2006",
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		detail := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, detail)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// Tag performs a case-insensitive lookup in the container tag map.
func (r Result) Tag(name string) (string, bool) {
	for key, value := range r.Format.Tags {
		if strings.EqualFold(key, name) && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

// EncodedDate returns the container's "date encoded" timestamp, if present
// and parseable.
func (r Result) EncodedDate() (time.Time, bool) {
	return r.firstTimestamp(encodedDateTags)
}

// CreatedDate returns the container's "date created" timestamp, if present
// and parseable.
func (r Result) CreatedDate() (time.Time, bool) {
	return r.firstTimestamp(createdDateTags)
}

func (r Result) firstTimestamp(names []string) (time.Time, bool) {
	for _, name := range names {
		value, ok := r.Tag(name)
		if !ok {
			continue
		}
		if ts, err := ParseTimestamp(value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ParseTimestamp parses a container tag value against the known timestamp
// spellings.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
