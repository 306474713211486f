package lwe

import (
	"errors"
	"fmt"
)

// ErrDecode is returned when a transport string is not valid ciphertext for
// this codec. All decode failures match it with errors.Is, whatever the
// failing stage.
var ErrDecode = errors.New("ciphertext decode failed")

// Decode stages, in pipeline order.
const (
	StageBase64    = "base64"
	StageJSON      = "json"
	StageStructure = "structure"
	StageUTF8      = "utf8"
)

// DecodeError reports a recoverable decode failure: the transport string is
// not valid base64, the decoded text is not a well-formed block sequence, or
// the reassembled bytes are not valid UTF-8. It is the only error kind a
// caller is expected to handle; no partial plaintext accompanies it.
type DecodeError struct {
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v at stage %s: %v", ErrDecode, e.Stage, e.Err)
	}
	return fmt.Sprintf("%v at stage %s", ErrDecode, e.Stage)
}

// Unwrap returns the underlying cause, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrDecode].
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func newDecodeError(stage string, err error) *DecodeError {
	return &DecodeError{Stage: stage, Err: err}
}
