package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/reelify/internal/highlight"
)

var videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}
var audioExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg"}

// Process routes a newly arrived file: videos run the reel flow
// (extract-and-transcode then chunk), audio files run the transcription and
// highlight flow. Unknown extensions are skipped.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case contains(videoExtensions, ext):
		return p.processVideo(ctx, path)
	case contains(audioExtensions, ext):
		_, err := p.Transcribe(ctx, path)
		return err
	default:
		p.logger.Debug(ctx, "Ignoring unsupported file: %s", path)
		return nil
	}
}

func (p *implProcessor) processVideo(ctx context.Context, videoPath string) error {
	runID := uuid.NewString()[:8]
	startTime := time.Now()

	p.logger.Info(ctx, "[%s] Starting reel composition: %s", runID, videoPath)

	if err := p.ExtractAndTranscode(ctx, videoPath); err != nil {
		return fmt.Errorf("extract and transcode: %w", err)
	}

	chunks, err := p.Chunk(ctx)
	if err != nil {
		return fmt.Errorf("chunk: %w", err)
	}

	p.logger.Info(ctx, "[%s] Reel composition done: %d chunks in %s",
		runID, len(chunks), time.Since(startTime))
	return nil
}

// ExtractAndTranscode produces the audio extracts and the vertical
// rendition from the source video, sharing the workspace's fixed slots.
func (p *implProcessor) ExtractAndTranscode(ctx context.Context, videoPath string) error {
	if err := p.ws.Ensure(); err != nil {
		return err
	}

	if _, _, err := p.reel.ExtractAudio(ctx, videoPath); err != nil {
		return err
	}

	if _, err := p.reel.ToVertical(ctx, videoPath); err != nil {
		return err
	}

	return nil
}

// Chunk splits the vertical rendition into ordered 30-second chunks.
func (p *implProcessor) Chunk(ctx context.Context) ([]string, error) {
	return p.reel.Split(ctx)
}

// Transcribe runs the full per-audio flow: language probe, transcript,
// transcript artifact, highlight timeline, and docx report. Returns the
// formatted timeline text. A failure here never touches other inputs.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := p.ws.Ensure(); err != nil {
		return "", err
	}

	runID := uuid.NewString()[:8]
	audioName := filepath.Base(audioPath)

	p.logger.Info(ctx, "[%s] Transcribing: %s", runID, audioName)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioName, err)
	}

	p.logger.Info(ctx, "[%s] Extracting highlight moments: %s", runID, audioName)

	points, err := p.extractor.Extract(ctx, transcript.Text)
	if err != nil {
		return "", fmt.Errorf("extract highlights for %s: %w", audioName, err)
	}

	timeline := highlight.Format(points)

	reportPath := p.ws.ReportPath(audioName)
	if err := highlight.WriteReport(audioName, points, transcript.Text, reportPath); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to write highlight report: %v", runID, err)
	} else {
		p.logger.Info(ctx, "[%s] Highlight report written: %s", runID, reportPath)
	}

	p.logger.Info(ctx, "[%s] Done: %d highlights from %s (%s detected, transcript %s)",
		runID, len(points), audioName, transcript.Language, transcript.TextPath)

	return timeline, nil
}

// Clean resets the workspace. Per-file failures are warnings, not errors.
func (p *implProcessor) Clean(ctx context.Context) error {
	warnings, err := p.ws.Reset(ctx)
	for _, w := range warnings {
		p.logger.Warn(ctx, "Cleanup: %s", w)
	}
	if err != nil {
		return fmt.Errorf("reset workspace: %w", err)
	}

	p.logger.Info(ctx, "Workspace cleaned (%d skipped files)", len(warnings))
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
