package reel

import (
	"context"

	"github.com/nguyentantai21042004/reelify/internal/media"
)

// verticalFilter scales the source to width 1080 (height rounded to the
// nearest even value), then pads symmetrically to a 1080x1920 canvas.
const verticalFilter = "scale=1080:-2,pad=1080:1920:(ow-iw)/2:(oh-ih)/2"

// ToVertical produces the reel-format rendition at the fixed vertical slot.
// Any prior vertical artifact is superseded.
func (r *implReel) ToVertical(ctx context.Context, inputPath string) (string, error) {
	outputPath := r.ws.VerticalVideo()

	r.logger.Info(ctx, "Converting to vertical (reel) format 1080x1920: %s", inputPath)

	req := media.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		OutputArgs: []string{
			"-vf", verticalFilter,
		},
	}
	if err := r.media.Transform(ctx, req); err != nil {
		return "", err
	}

	r.logger.Info(ctx, "Reel format created: %s", outputPath)
	return outputPath, nil
}
