package errs

import (
	"errors"
	"fmt"
)

var ErrForbidden = errors.New("forbidden")

// ForbiddenError reports an authenticated actor acting outside its rights.
// Action names the attempted operation, Reason describes the failed check.
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{
		Action: action,
		Reason: reason,
	}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s (reason: %s)", ErrForbidden, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
