package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the judge rejected the username/password pair.
	ErrUnauthorized = errors.New("invalid username or password")
	// ErrUnknownResponse means the judge answered with a page none of the markers matched.
	ErrUnknownResponse = errors.New("unrecognised response from the judge")
	// ErrNotAuthenticated means no stored credentials exist.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrSessionExpired means stored credentials were rejected by the judge.
	ErrSessionExpired = errors.New("session expired")
	// ErrFileUnreadable wraps failures reading the solution file.
	ErrFileUnreadable = errors.New("solution file unreadable")
	// ErrCancelled ends a watch stopped by its context.
	ErrCancelled = errors.New("watch cancelled")
)

// TransportError is a network-level failure (DNS, timeout, reset, bad status)
// as opposed to an application-level rejection by the judge.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err came from the network rather than the judge.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
