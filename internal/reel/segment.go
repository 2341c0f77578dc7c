package reel

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/reelify/internal/media"
)

// chunkSeconds is the fixed maximum chunk length. The last chunk of a video
// carries the remainder and may be shorter.
const chunkSeconds = 30

// Split segments the vertical video into numbered chunks via stream copy
// (no re-encode). The vertical artifact must exist; stale chunks from a
// prior run are removed before the service is invoked, so a failed split
// leaves zero usable chunks rather than a mixed set.
func (r *implReel) Split(ctx context.Context) ([]string, error) {
	verticalPath := r.ws.VerticalVideo()
	if _, err := r.stat(verticalPath); err != nil {
		return nil, &PreconditionError{
			Missing: "vertical video",
			Hint:    "run transcoding first",
		}
	}

	r.logger.Info(ctx, "Splitting vertical video into %d-second chunks", chunkSeconds)

	if err := r.ws.RemoveChunks(); err != nil {
		return nil, fmt.Errorf("clear stale chunks: %w", err)
	}

	req := media.Request{
		InputPath:  verticalPath,
		OutputPath: r.ws.ChunkPattern(),
		OutputArgs: []string{
			"-f", "segment",
			"-segment_time", fmt.Sprintf("%d", chunkSeconds),
			"-c", "copy",
		},
	}
	if err := r.media.Transform(ctx, req); err != nil {
		return nil, err
	}

	chunks, err := r.ws.Chunks()
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	// Chunk accounting against the probed duration. The set is gapless and
	// ordered, so the count fully determines the layout.
	if meta, err := r.media.Probe(ctx, verticalPath); err == nil {
		if want := ChunkCount(meta.DurationSecs); want != len(chunks) {
			r.logger.Warn(ctx, "Expected %d chunks for %.1fs video, got %d", want, meta.DurationSecs, len(chunks))
		} else {
			r.logger.Debug(ctx, "Final chunk carries %.1fs of %.1fs total", LastChunkSeconds(meta.DurationSecs), meta.DurationSecs)
		}
	}

	r.logger.Info(ctx, "Created %d chunks", len(chunks))
	return chunks, nil
}

// ChunkCount returns how many chunks a video of the given duration yields.
func ChunkCount(durationSecs float64) int {
	if durationSecs <= 0 {
		return 0
	}
	count := int(durationSecs / chunkSeconds)
	if durationSecs > float64(count*chunkSeconds) {
		count++
	}
	return count
}

// LastChunkSeconds returns the duration of the final chunk for a video of
// the given duration: the remainder after all full 30-second chunks.
func LastChunkSeconds(durationSecs float64) float64 {
	count := ChunkCount(durationSecs)
	if count == 0 {
		return 0
	}
	return durationSecs - float64(chunkSeconds*(count-1))
}
