package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// kindError carries a client-facing message while still matching one of the
// sentinel kinds above through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Invalid returns an ErrInvalidInput error with the given message.
func Invalid(msg string) error {
	return &kindError{kind: ErrInvalidInput, msg: msg}
}

// NotFound returns an ErrNotFound error with the given message.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}
