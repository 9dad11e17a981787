package engine

import "fmt"

// ValidationError indicates an import payload that could not be accepted.
// The in-memory dataset is guaranteed unchanged when it is returned.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid snapshot: %s", e.Reason)
}
