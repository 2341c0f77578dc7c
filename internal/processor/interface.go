package processor

import "context"

// Processor exposes the pipeline's named operations. Each operation is
// synchronous and fails terminally for its own stage only; nothing is
// retried, and a failure never blocks unrelated inputs.
type Processor interface {
	// Process dispatches a newly arrived file to the video or audio flow
	// based on its extension.
	Process(ctx context.Context, path string) error

	// ExtractAndTranscode extracts the wav/mp3 audio slots and produces the
	// vertical reel rendition of the source video.
	ExtractAndTranscode(ctx context.Context, videoPath string) error

	// Chunk splits the vertical rendition into 30-second chunks.
	Chunk(ctx context.Context) ([]string, error)

	// Transcribe runs one audio file through transcription and highlight
	// extraction, returning the formatted timeline.
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Clean resets the workspace, tolerating locked files.
	Clean(ctx context.Context) error
}
