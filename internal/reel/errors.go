package reel

import "fmt"

// PreconditionError reports that a stage was triggered before the prior
// stage produced the artifact it depends on.
type PreconditionError struct {
	Missing string
	Hint    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing %s: %s", e.Missing, e.Hint)
}
