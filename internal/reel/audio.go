package reel

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/reelify/internal/media"
)

// ExtractAudio extracts the source video's audio track into the two fixed
// workspace slots: a 16kHz mono PCM wav (the transcription engine's input
// format) and a best-quality VBR mp3.
func (r *implReel) ExtractAudio(ctx context.Context, inputPath string) (string, string, error) {
	wavPath := r.ws.AudioWAV()
	mp3Path := r.ws.AudioMP3()

	r.logger.Info(ctx, "Extracting audio (.wav): %s", inputPath)

	// -vn: audio only
	// -ar 16000 -ac 1 -c:a pcm_s16le: 16kHz mono PCM, what whisper expects
	wavReq := media.Request{
		InputPath:  inputPath,
		OutputPath: wavPath,
		OutputArgs: []string{
			"-vn",
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
		},
	}
	if err := r.media.Transform(ctx, wavReq); err != nil {
		return "", "", fmt.Errorf("extract wav: %w", err)
	}

	r.logger.Info(ctx, "Extracting audio (.mp3): %s", inputPath)

	// -q:a 0: highest-quality VBR
	mp3Req := media.Request{
		InputPath:  inputPath,
		OutputPath: mp3Path,
		OutputArgs: []string{
			"-map", "a",
			"-q:a", "0",
		},
	}
	if err := r.media.Transform(ctx, mp3Req); err != nil {
		return "", "", fmt.Errorf("extract mp3: %w", err)
	}

	r.logger.Info(ctx, "Audio extracted: %s, %s", wavPath, mp3Path)
	return wavPath, mp3Path, nil
}
