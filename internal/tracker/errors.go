package tracker

import "fmt"

// StateError indicates an invalid break lifecycle transition, e.g.
// completing a break that was never started.
type StateError struct {
	BreakID string
	Reason  string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("break %s: %s", e.BreakID, e.Reason)
}

func stateErr(breakID, reason string) *StateError {
	return &StateError{BreakID: breakID, Reason: reason}
}
