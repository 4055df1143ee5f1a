package sdk

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/lattice-bindgen/errors"
)

// Value is one wire-encoded transport value. Each declared argument of a
// lattice function travels as its own Value, in declaration order.
type Value []byte

// EncodeValue encodes a Go value into its transport representation.
func EncodeValue(v any) (Value, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "encode value")
	}
	return Value(data), nil
}

// DecodeValue decodes a transport value into out, which must be a pointer.
func DecodeValue(v Value, out any) error {
	if err := msgpack.Unmarshal(v, out); err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode value")
	}
	return nil
}

// ValueAt returns the i-th incoming value. Arguments are consumed
// front-first: the value at index i corresponds to the i-th declared
// argument. A short value collection is reported against the named
// parameter.
func ValueAt(params []Value, i int, name string) (Value, error) {
	if i >= len(params) {
		return nil, MissingParam(name)
	}
	return params[i], nil
}

// JoinValues packs per-argument values into a single outbound payload.
func JoinValues(params []Value) ([]byte, error) {
	raw := make([]msgpack.RawMessage, len(params))
	for i, p := range params {
		raw[i] = msgpack.RawMessage(p)
	}
	data, err := msgpack.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "join values")
	}
	return data, nil
}

// SplitValues unpacks an inbound payload into per-argument values.
func SplitValues(payload []byte) ([]Value, error) {
	var raw []msgpack.RawMessage
	if err := msgpack.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "split values")
	}
	params := make([]Value, len(raw))
	for i, r := range raw {
		params[i] = Value(r)
	}
	return params, nil
}
