package highlight

import (
	"context"
	"fmt"
)

const (
	// windowRunes is the fixed maximum window length, in characters.
	windowRunes = 1000

	// maxPoints caps the timeline regardless of transcript length.
	maxPoints = 5

	// pointSeconds is every highlight's fixed duration, independent of the
	// spacing between consecutive starts.
	pointSeconds = 30
)

// HighlightError reports a failed extraction. The only causes at this layer
// are summarization-service errors and downstream formatting errors; there
// are no partial timelines.
type HighlightError struct {
	Window int
	Err    error
}

func (e *HighlightError) Error() string {
	if e.Window > 0 {
		return fmt.Sprintf("highlight extraction failed at window %d: %v", e.Window, e.Err)
	}
	return fmt.Sprintf("highlight extraction failed: %v", e.Err)
}

func (e *HighlightError) Unwrap() error {
	return e.Err
}

// windows partitions the transcript left-to-right into slices of at most
// windowRunes characters: no gaps, no overlap, last window may be short.
// Concatenating the windows in order reconstructs the transcript exactly.
func windows(transcript string) []string {
	runes := []rune(transcript)

	var out []string
	for i := 0; i < len(runes); i += windowRunes {
		end := i + windowRunes
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}

// Extract partitions the transcript into windows, summarizes each, and maps
// the first min(5, windows) summaries onto evenly spaced start offsets over
// the assumed total duration. An empty transcript yields an empty timeline
// without touching the summarization service.
//
// Spacing is start-to-start while every point's duration is fixed at 30s;
// with a step under 30s consecutive points overlap in wall-clock terms.
// That arithmetic is intentional and kept as-is.
func (e *implExtractor) Extract(ctx context.Context, transcript string) ([]Point, error) {
	wins := windows(transcript)
	if len(wins) == 0 {
		return nil, nil
	}

	e.logger.Debug(ctx, "Summarizing %d transcript windows", len(wins))

	summaries := make([]string, 0, len(wins))
	for i, win := range wins {
		summary, err := e.summarizer.Summarize(ctx, win)
		if err != nil {
			return nil, &HighlightError{Window: i + 1, Err: err}
		}
		summaries = append(summaries, summary)
	}

	totalSegments := len(summaries)
	if totalSegments > maxPoints {
		totalSegments = maxPoints
	}

	timeStep := e.videoDurationSecs / (totalSegments + 1)

	points := make([]Point, 0, totalSegments)
	start := timeStep
	for i := 0; i < totalSegments; i++ {
		points = append(points, Point{
			Ordinal:   i + 1,
			StartSecs: start,
			EndSecs:   start + pointSeconds,
			Summary:   summaries[i],
		})
		start += timeStep
	}

	return points, nil
}
