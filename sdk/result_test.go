package sdk

import (
	"errors"
	"testing"
)

const testOp = "wasmcloud:keyvalue/key-value.get"

func TestEncodeResult_OK(t *testing.T) {
	payload, err := EncodeResult(testOp, "hello", nil)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}

	var out string
	if err := DecodeResult(testOp, payload, &out); err != nil {
		t.Fatalf("DecodeResult failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("out = %q, want hello", out)
	}
}

func TestEncodeResult_ErrString(t *testing.T) {
	payload, err := EncodeResult(testOp, nil, errors.New("key not found"))
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}

	decodeErr := DecodeResult(testOp, payload, nil)
	if decodeErr == nil {
		t.Fatal("expected error, got nil")
	}

	var remote *RemoteError
	if !errors.As(decodeErr, &remote) {
		t.Fatalf("err = %T, want *RemoteError", decodeErr)
	}
	if remote.Message != "key not found" {
		t.Errorf("Message = %q, want 'key not found'", remote.Message)
	}
	if remote.Operation != testOp {
		t.Errorf("Operation = %q, want %q", remote.Operation, testOp)
	}
}

func TestEncodeResult_WireErrorPassthrough(t *testing.T) {
	// A structured error payload crosses intact instead of being
	// flattened to its message string.
	inner, err := EncodeValue(map[string]string{"code": "not-found"})
	if err != nil {
		t.Fatalf("EncodeValue failed: %v", err)
	}

	payload, err := EncodeResult(testOp, nil, &WireError{Operation: testOp, Payload: inner})
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}

	decodeErr := DecodeResult(testOp, payload, nil)
	var wire *WireError
	if !errors.As(decodeErr, &wire) {
		t.Fatalf("err = %T, want *WireError", decodeErr)
	}

	var detail map[string]string
	if err := wire.Decode(&detail); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if detail["code"] != "not-found" {
		t.Errorf("code = %q, want not-found", detail["code"])
	}
}

func TestEncodeResult_OKIgnoredOutput(t *testing.T) {
	payload, err := EncodeResult(testOp, uint32(7), nil)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}
	// nil out skips payload decoding entirely.
	if err := DecodeResult(testOp, payload, nil); err != nil {
		t.Errorf("DecodeResult with nil out failed: %v", err)
	}
}

func TestDecodeResult_Garbage(t *testing.T) {
	if err := DecodeResult(testOp, []byte{0xc1}, nil); err == nil {
		t.Error("expected error on malformed frame")
	}
}

func TestEncodeReturn_RoundTrip(t *testing.T) {
	payload, err := EncodeReturn(testOp, []string{"a", "b"})
	if err != nil {
		t.Fatalf("EncodeReturn failed: %v", err)
	}

	var out []string
	if err := DecodeReturn(testOp, payload, &out); err != nil {
		t.Fatalf("DecodeReturn failed: %v", err)
	}
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("out = %v, want [a b]", out)
	}
}

func TestEncodeReturn_Void(t *testing.T) {
	payload, err := EncodeReturn(testOp, nil)
	if err != nil {
		t.Fatalf("EncodeReturn failed: %v", err)
	}
	if err := DecodeReturn(testOp, payload, nil); err != nil {
		t.Errorf("DecodeReturn failed: %v", err)
	}
}
