package reel

import "context"

// Reel builds the vertical rendition of a source video and its 30-second
// chunk set. Stages are discrete: ToVertical and Split share only the
// vertical-video artifact in the workspace.
type Reel interface {
	// ExtractAudio produces the fixed wav and mp3 audio extracts from the
	// source video, returning their paths.
	ExtractAudio(ctx context.Context, inputPath string) (wavPath, mp3Path string, err error)

	// ToVertical produces the 1080x1920 scale-and-pad rendition at the
	// fixed vertical slot, returning its path.
	ToVertical(ctx context.Context, inputPath string) (string, error)

	// Split segments the vertical video into numbered 30-second chunks and
	// returns their paths in temporal order.
	Split(ctx context.Context) ([]string, error)
}
