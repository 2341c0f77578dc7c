package media

import (
	"context"
	"path/filepath"
	"strings"
)

// Transform runs one ffmpeg invocation built from the request. Output files
// are always overwritten; every prior artifact at the output path is
// superseded, never mutated in place.
func (t *implTransformer) Transform(ctx context.Context, req Request) error {
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-y",
	}
	args = append(args, req.InputArgs...)
	args = append(args, "-i", req.InputPath)
	args = append(args, req.OutputArgs...)
	args = append(args, req.OutputPath)

	t.logger.Debug(ctx, "ffmpeg %s", strings.Join(args, " "))

	out, err := t.executor.Execute(ctx, t.ffmpegPath, args...)
	if err != nil {
		return &TransformError{
			Op:         filepath.Base(req.OutputPath),
			Diagnostic: strings.TrimSpace(out.Stderr),
			Err:        err,
		}
	}

	return nil
}
