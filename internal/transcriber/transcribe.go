package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe detects the spoken language of the audio, then produces a full
// transcript and writes it to the workspace as <original_filename>.txt.
//
// The transcript is always requested with the configured fixed language
// (default "en") regardless of what the probe detected. Known limitation,
// pending product confirmation; the detected code is only reported.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	audioName := filepath.Base(audioPath)

	t.logger.Info(ctx, "Detecting language: %s", audioName)

	detected, err := t.detectLanguage(ctx, audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("detect language: %w", err)
	}
	t.logger.Info(ctx, "Detected language: %s", detected)

	textPath := t.ws.TranscriptPath(audioName)
	outputPrefix := strings.TrimSuffix(textPath, ".txt")

	t.logger.Info(ctx, "Transcribing %s (forced language: %s, %d threads)",
		audioName, t.cfg.Whisper.Language, t.cfg.Whisper.Threads)

	// -otxt + -of: write plain-text transcript next to the other artifacts
	// -l: forced language, see note above
	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-of", outputPrefix,
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return Transcript{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	content, err := t.readFile(textPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript %s: %w", textPath, err)
	}

	t.logger.Info(ctx, "Transcript written: %s", textPath)

	return Transcript{
		Text:     strings.TrimSpace(string(content)),
		Language: detected,
		Source:   audioName,
		TextPath: textPath,
	}, nil
}
