package hgamal

import "errors"

var (
	// ErrInvalidSize is returned when a plaintext or cipher is not exactly
	// 32 bytes long.
	ErrInvalidSize = errors.New("invalid size")
	// ErrAuthenticationFailed is returned when authenticated decryption of
	// an envelope fails.
	ErrAuthenticationFailed = errors.New("authenticated decryption failed")
)

// EncryptionError reports a failed encryption or decryption.
type EncryptionError struct {
	Msg string
	Err error
}

// NewEncryptionError returns an *EncryptionError wrapping cause.
func NewEncryptionError(msg string, cause error) *EncryptionError {
	return &EncryptionError{Msg: msg, Err: cause}
}

func (e *EncryptionError) Error() string {
	if e.Err != nil {
		return "encryption err: " + e.Msg + ": " + e.Err.Error()
	}
	return "encryption err: " + e.Msg
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}
