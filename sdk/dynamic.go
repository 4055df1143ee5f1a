package sdk

import (
	"encoding/json"

	"github.com/wippyai/lattice-bindgen/errors"
)

// DynamicType is a structural description of one wire type. It carries no
// live Go type; it describes one as data, so a dispatcher can marshal
// values for functions it learned about at process start.
type DynamicType struct {
	// Kind is the type constructor: bool, u8..u64, s8..s64, f32, f64,
	// char, string, list, option, tuple, record, variant, enum, flags,
	// result.
	Kind string `json:"kind"`

	// Name is set for named record/variant/enum/flags/alias types.
	Name string `json:"name,omitempty"`

	Elem   *DynamicType   `json:"elem,omitempty"`   // list, option
	OK     *DynamicType   `json:"ok,omitempty"`     // result
	Err    *DynamicType   `json:"err,omitempty"`    // result
	Types  []DynamicType  `json:"types,omitempty"`  // tuple
	Fields []DynamicField `json:"fields,omitempty"` // record
	Cases  []DynamicCase  `json:"cases,omitempty"`  // variant, enum, flags
}

// DynamicField is one named record field.
type DynamicField struct {
	Name string      `json:"name"`
	Type DynamicType `json:"type"`
}

// DynamicCase is one variant case; Type is nil for payload-free cases and
// for enum/flags entries.
type DynamicCase struct {
	Name string       `json:"name"`
	Type *DynamicType `json:"type,omitempty"`
}

// DynamicParam is one named function argument.
type DynamicParam struct {
	Name string      `json:"name"`
	Type DynamicType `json:"type"`
}

// DynamicFunction describes a function's argument and return shapes. It is
// serialized as JSON data, embedded in generated output, and deserialized
// at process start for use in late-bound marshalling.
type DynamicFunction struct {
	Params []DynamicParam `json:"params"`
	Result *DynamicType   `json:"result,omitempty"`
}

// ParseDynamicFunction deserializes an embedded function descriptor.
func ParseDynamicFunction(data []byte) (DynamicFunction, error) {
	var fn DynamicFunction
	if err := json.Unmarshal(data, &fn); err != nil {
		return DynamicFunction{}, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "parse dynamic function descriptor")
	}
	return fn, nil
}

// MustParseDynamicFunction is ParseDynamicFunction for compiler-emitted
// literals, where a parse failure means the generated code itself is
// corrupt.
func MustParseDynamicFunction(s string) DynamicFunction {
	fn, err := ParseDynamicFunction([]byte(s))
	if err != nil {
		panic(err)
	}
	return fn
}
