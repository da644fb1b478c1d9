package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports a lifecycle action attempted from a state
// that does not allow it.
type InvalidTransitionError struct {
	Current string
	Action  string
}

func NewInvalidTransitionError(current fmt.Stringer, action fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current: current.String(),
		Action:  action.String(),
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrInvalidTransition, e.Action, e.Current)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
