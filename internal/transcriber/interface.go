package transcriber

import "context"

// Transcript is the immutable result of transcribing one audio file.
type Transcript struct {
	Text     string
	Language string
	Source   string
	TextPath string
}

// Transcriber is the opaque speech-to-text service boundary.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcript, error)
}
