package summarizer

import "context"

// Summarizer is the opaque summarization service boundary: one text window
// in, one short summary out.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
