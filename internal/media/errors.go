package media

import "fmt"

// TransformError reports a failed media transform. Diagnostic carries the
// service's raw stderr text so callers can surface it verbatim.
type TransformError struct {
	Op         string
	Diagnostic string
	Err        error
}

func (e *TransformError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("media transform %s failed: %v\n%s", e.Op, e.Err, e.Diagnostic)
	}
	return fmt.Sprintf("media transform %s failed: %v", e.Op, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
