package workspace

import "context"

// Workspace owns the scratch directory holding every intermediate and
// output artifact for a processing session.
type Workspace interface {
	Root() string
	Ensure() error
	Reset(ctx context.Context) ([]CleanupWarning, error)

	AudioWAV() string
	AudioMP3() string
	VerticalVideo() string
	LanguageClip() string
	ChunkPattern() string
	Chunks() ([]string, error)
	RemoveChunks() error
	TranscriptPath(audioName string) string
	ReportPath(audioName string) string
}
