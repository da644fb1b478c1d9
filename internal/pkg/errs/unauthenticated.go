package errs

import (
	"errors"
	"fmt"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// UnauthenticatedError reports a missing, malformed or expired credential.
type UnauthenticatedError struct {
	Cause error
}

func NewUnauthenticatedError(cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrUnauthenticated, e.Cause)
	}
	return ErrUnauthenticated.Error()
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}
