package sdk

import (
	"github.com/vmihailenco/msgpack/v5"
)

// A WIT result return travels as a two-element array: discriminant 0 with
// the ok payload, or discriminant 1 with the err payload. Plain returns are
// the bare payload with no frame.

const (
	resultOK  = 0
	resultErr = 1
)

type resultFrame struct {
	_msgpack struct{} `msgpack:",as_array"`

	Disc    uint8
	Payload msgpack.RawMessage
}

// RemoteError is the decoded err arm of a remote result whose error shape
// is a plain string.
type RemoteError struct {
	Operation string
	Message   string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// EncodeResult frames a handler's (ok, err) return for the wire. A nil
// callErr encodes the ok arm. A *WireError cause keeps its payload intact;
// any other error encodes as its message string.
func EncodeResult(operation string, ok any, callErr error) ([]byte, error) {
	frame := resultFrame{Disc: resultOK}

	if callErr != nil {
		frame.Disc = resultErr
		if we, isWire := callErr.(*WireError); isWire {
			frame.Payload = msgpack.RawMessage(we.Payload)
		} else {
			p, err := msgpack.Marshal(callErr.Error())
			if err != nil {
				return nil, EncodeResultFailed(operation, err)
			}
			frame.Payload = msgpack.RawMessage(p)
		}
	} else {
		p, err := msgpack.Marshal(ok)
		if err != nil {
			return nil, EncodeResultFailed(operation, err)
		}
		frame.Payload = msgpack.RawMessage(p)
	}

	data, err := msgpack.Marshal(frame)
	if err != nil {
		return nil, EncodeResultFailed(operation, err)
	}
	return data, nil
}

// DecodeResult unframes a remote result. The ok payload decodes into out
// (ignored when out is nil); the err arm surfaces as *RemoteError for
// string payloads and *WireError otherwise.
func DecodeResult(operation string, payload []byte, out any) error {
	var frame resultFrame
	if err := msgpack.Unmarshal(payload, &frame); err != nil {
		return InvokeFailed(operation, err)
	}

	switch frame.Disc {
	case resultOK:
		if out == nil {
			return nil
		}
		if err := msgpack.Unmarshal(frame.Payload, out); err != nil {
			return InvokeFailed(operation, err)
		}
		return nil
	case resultErr:
		var msg string
		if err := msgpack.Unmarshal(frame.Payload, &msg); err == nil {
			return &RemoteError{Operation: operation, Message: msg}
		}
		return &WireError{Operation: operation, Payload: frame.Payload}
	default:
		return MalformedOperation(operation)
	}
}

// EncodeReturn encodes a plain (non-result) response payload. A nil value
// encodes the empty return of a void function.
func EncodeReturn(operation string, v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, EncodeResultFailed(operation, err)
	}
	return data, nil
}

// DecodeReturn decodes a plain (non-result) response payload into out.
func DecodeReturn(operation string, payload []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := msgpack.Unmarshal(payload, out); err != nil {
		return InvokeFailed(operation, err)
	}
	return nil
}
