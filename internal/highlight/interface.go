package highlight

import "context"

// Point is one timestamped highlight on the synthetic timeline.
type Point struct {
	Ordinal   int
	StartSecs int
	EndSecs   int
	Summary   string
}

// Extractor maps a transcript onto an ordered highlight timeline.
type Extractor interface {
	Extract(ctx context.Context, transcript string) ([]Point, error)
}
