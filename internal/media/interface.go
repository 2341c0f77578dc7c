package media

import "context"

// Request describes one media transform: an input path, an output path, and
// the operation parameters that go between them on the service's command
// line. InputArgs precede -i, OutputArgs precede the output path.
type Request struct {
	InputPath  string
	OutputPath string
	InputArgs  []string
	OutputArgs []string
}

// Metadata holds what a probe learned about a media asset.
type Metadata struct {
	DurationSecs float64
}

// Transformer is the opaque media-transform service boundary. The pipeline
// never assumes anything about the backend beyond this contract.
type Transformer interface {
	Transform(ctx context.Context, req Request) error
	Probe(ctx context.Context, path string) (Metadata, error)
}
