package group

import (
	"errors"
)

// ErrInvalidEncoding is matched by every *EncodingError through errors.Is.
var ErrInvalidEncoding = errors.New("invalid encoding")

// EncodingError reports malformed or out-of-range scalar, point or
// address bytes.
type EncodingError struct {
	Msg string
	Err error // underlying cause, may be nil
}

// NewEncodingError returns an *EncodingError with the given message and cause.
func NewEncodingError(msg string, cause error) *EncodingError {
	return &EncodingError{Msg: msg, Err: cause}
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return "encoding err: " + e.Msg + ": " + e.Err.Error()
	}
	return "encoding err: " + e.Msg
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is makes every EncodingError match ErrInvalidEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}
