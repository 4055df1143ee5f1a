package sdk

import (
	"fmt"

	"github.com/wippyai/lattice-bindgen/errors"
)

// Invocation failures are local to one call: they terminate only that
// invocation, never the serving process. The message shapes below are part
// of the observable contract of generated code and match what counterpart
// services log.

// MalformedOperation reports an operation name with no dispatch arm.
func MalformedOperation(operation string) *errors.Error {
	return errors.New(errors.PhaseDispatch, errors.KindMalformedOperation).
		Detail("Invalid operation name [%s]", operation).
		Value(operation).
		Build()
}

// MissingParam reports an absent argument value during decode.
func MissingParam(name string) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindUnexpected).
		Detail("missing expected parameter [%s]", name).
		Build()
}

// DecodeParam reports a malformed argument value during decode.
func DecodeParam(name string, cause error) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindUnexpected).
		Cause(cause).
		Detail("failed to decode parameter [%s]", name).
		Build()
}

// EncodeParam reports an argument that could not be encoded for an
// outbound call.
func EncodeParam(operation, name string, cause error) *errors.Error {
	return errors.New(errors.PhaseInvoke, errors.KindUnexpected).
		Cause(cause).
		Detail("failed to encode parameter [%s] of operation [%s]", name, operation).
		Build()
}

// EncodeResultFailed reports a response that could not be encoded.
func EncodeResultFailed(operation string, cause error) *errors.Error {
	return errors.New(errors.PhaseEncode, errors.KindUnexpected).
		Cause(cause).
		Detail("failed to encode result of operation [%s]", operation).
		Build()
}

// HandlerFailed reports a handler error on a function whose wire shape has
// no error channel.
func HandlerFailed(operation string, cause error) *errors.Error {
	return errors.New(errors.PhaseDispatch, errors.KindUnexpected).
		Cause(cause).
		Detail("handler for operation [%s] failed", operation).
		Build()
}

// InvokeFailed reports a transport or decode failure of an outbound call.
func InvokeFailed(operation string, cause error) *errors.Error {
	return errors.New(errors.PhaseInvoke, errors.KindUnexpected).
		Cause(cause).
		Detail("failed to invoke operation [%s]", operation).
		Build()
}

// WireError carries the error payload of a remote result whose err shape is
// not a plain string. The payload stays wire-encoded until the caller
// chooses to decode it.
type WireError struct {
	Operation string
	Payload   []byte
}

func (e *WireError) Error() string {
	return fmt.Sprintf("operation [%s] returned an error payload (%d bytes)", e.Operation, len(e.Payload))
}

// Decode decodes the carried error payload into out.
func (e *WireError) Decode(out any) error {
	return DecodeValue(Value(e.Payload), out)
}
