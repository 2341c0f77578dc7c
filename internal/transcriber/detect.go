package transcriber

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/reelify/internal/media"
)

// probeWindowSeconds bounds the leading acoustic window handed to the
// language model; the model pads shorter audio up to its input length.
const probeWindowSeconds = 30

var reDetectedLang = regexp.MustCompile(`auto-detected language:\s*([a-zA-Z]{2,})`)

// detectLanguage produces a best-guess spoken-language code by clipping the
// leading window of the audio to 16kHz mono and running the model in
// detect-only mode.
func (t *implTranscriber) detectLanguage(ctx context.Context, audioPath string) (string, error) {
	clipPath := t.ws.LanguageClip()

	req := media.Request{
		InputPath:  audioPath,
		OutputPath: clipPath,
		OutputArgs: []string{
			"-t", strconv.Itoa(probeWindowSeconds),
			"-vn",
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
		},
	}
	if err := t.media.Transform(ctx, req); err != nil {
		return "", fmt.Errorf("clip language probe window: %w", err)
	}

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", clipPath,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--detect-language",
	}

	out, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper detect language: %w", err)
	}

	// whisper.cpp reports the detection on stderr
	if m := reDetectedLang.FindStringSubmatch(out.Stderr + "\n" + out.Stdout); m != nil {
		return strings.ToLower(m[1]), nil
	}

	return "", fmt.Errorf("no detected language in whisper output")
}
