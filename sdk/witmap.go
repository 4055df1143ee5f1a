package sdk

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/wippyai/lattice-bindgen/errors"
)

// The wire type system has no native map primitive; an associative
// structure travels as an ordered sequence of key/value pairs. With map
// translation enabled, generated signatures present native Go maps and
// convert at the encode/decode boundary through the helpers below.

// Pair is one key/value element of a wire-encoded map. It encodes as a
// two-element array, matching tuple<k, v>.
type Pair[K cmp.Ordered, V any] struct {
	_msgpack struct{} `msgpack:",as_array"`

	Key   K
	Value V
}

// MapToPairs converts a native map into its wire pair sequence. Pairs are
// emitted in ascending key order so repeated encodes are byte-identical.
func MapToPairs[K cmp.Ordered, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(pairs, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return pairs
}

// PairsToMap converts a wire pair sequence into a native map. Keys are
// required to be unique in a given instance; a duplicate key rejects the
// whole sequence rather than silently keeping either value.
func PairsToMap[K cmp.Ordered, V any](pairs []Pair[K, V]) (map[K]V, error) {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		if _, seen := m[p.Key]; seen {
			return nil, errors.New(errors.PhaseDecode, errors.KindDuplicateKey).
				Detail("duplicate key %v in pair sequence", p.Key).
				Value(fmt.Sprint(p.Key)).
				Build()
		}
		m[p.Key] = p.Value
	}
	return m, nil
}
