package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ffprobeOutput captures the format.duration field from ffprobe JSON.
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe asks ffprobe for the asset's duration. Duration is unknown until a
// probe succeeds; chunk accounting is the only consumer.
func (t *implTransformer) Probe(ctx context.Context, path string) (Metadata, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	}

	out, err := t.executor.Execute(ctx, t.ffprobePath, args...)
	if err != nil {
		return Metadata{}, &TransformError{
			Op:         "probe",
			Diagnostic: strings.TrimSpace(out.Stderr),
			Err:        err,
		}
	}

	var probed ffprobeOutput
	if err := json.Unmarshal([]byte(out.Stdout), &probed); err != nil {
		return Metadata{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if probed.Format.Duration == "" {
		return Metadata{}, fmt.Errorf("ffprobe output has no duration for %s", path)
	}

	secs, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return Metadata{}, fmt.Errorf("parse duration %q: %w", probed.Format.Duration, err)
	}

	return Metadata{DurationSecs: secs}, nil
}
