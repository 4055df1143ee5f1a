package sdk

import (
	"errors"
	"testing"

	binderrors "github.com/wippyai/lattice-bindgen/errors"
)

func TestMapToPairs_Sorted(t *testing.T) {
	m := map[string]int{"zebra": 1, "alpha": 2, "mango": 3}

	pairs := MapToPairs(m)

	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}
	want := []string{"alpha", "mango", "zebra"}
	for i, k := range want {
		if pairs[i].Key != k {
			t.Errorf("pairs[%d].Key = %q, want %q", i, pairs[i].Key, k)
		}
		if pairs[i].Value != m[k] {
			t.Errorf("pairs[%d].Value = %d, want %d", i, pairs[i].Value, m[k])
		}
	}
}

func TestMapToPairs_Empty(t *testing.T) {
	pairs := MapToPairs(map[string]string{})
	if len(pairs) != 0 {
		t.Errorf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestPairsToMap_RoundTrip(t *testing.T) {
	m := map[uint32]string{7: "seven", 1: "one", 42: "forty-two"}

	back, err := PairsToMap(MapToPairs(m))
	if err != nil {
		t.Fatalf("PairsToMap failed: %v", err)
	}
	if len(back) != len(m) {
		t.Fatalf("len = %d, want %d", len(back), len(m))
	}
	for k, v := range m {
		if back[k] != v {
			t.Errorf("back[%d] = %q, want %q", k, back[k], v)
		}
	}
}

func TestPairsToMap_DuplicateKey(t *testing.T) {
	pairs := []Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "a", Value: 3},
	}

	_, err := PairsToMap(pairs)
	if err == nil {
		t.Fatal("expected duplicate key error, got nil")
	}
	if !errors.Is(err, &binderrors.Error{Phase: binderrors.PhaseDecode, Kind: binderrors.KindDuplicateKey}) {
		t.Errorf("err = %v, want [decode] duplicate_key", err)
	}
}

func TestPair_WireShape(t *testing.T) {
	// A pair must travel as a two-element array, matching tuple<k, v>.
	v, err := EncodeValue(Pair[string, int]{Key: "x", Value: 9})
	if err != nil {
		t.Fatalf("EncodeValue failed: %v", err)
	}

	var arr []any
	if err := DecodeValue(v, &arr); err != nil {
		t.Fatalf("DecodeValue failed: %v", err)
	}
	if len(arr) != 2 {
		t.Fatalf("pair encoded as %d elements, want 2", len(arr))
	}
	if arr[0] != "x" {
		t.Errorf("arr[0] = %v, want x", arr[0])
	}
}
