package lattice

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/catalog"
)

// Direction is a tagged variant distinguishing the two translation
// targets. Export methods become dispatch arms served by the provider
// implementation; import methods become stub methods on a client handle.
type Direction interface {
	isDirection()
}

// Export marks a function the component serves over the lattice.
type Export struct {
	// InterfaceIdent is the generated capability-interface name the
	// handler method belongs to.
	InterfaceIdent string
}

// Import marks a function the component calls on a remote interface.
type Import struct {
	// HandlerName is the client handle type the stub method attaches to.
	HandlerName string
}

func (Export) isDirection() {}
func (Import) isDirection() {}

// MapShape is set on an argument when witified-map translation applies:
// the wire carries list<tuple<key, value>> but the generated signature
// presents a native map.
type MapShape struct {
	Key   wit.Type
	Value wit.Type
}

// Arg is one translated invocation argument.
type Arg struct {
	// Name is the wire-facing kebab-case name used in failure messages
	// and descriptors.
	Name string

	// GoName is the lowerCamel Go parameter name.
	GoName string

	Type wit.Type
	Map  *MapShape
}

// Return describes the translated return shape. IsResult marks WIT result
// returns, which render as (T, error) with OK/Err carrying the payload
// types.
type Return struct {
	Type     wit.Type
	IsResult bool
	OK       wit.Type
	Err      wit.Type
}

// Method is the normalized description of one lattice-exposed function:
// everything the builders need to emit a dispatch arm, an import stub, or
// a subject entry without touching the IDL graph again.
type Method struct {
	// Operation is the canonical wire identifier,
	// <namespace>:<package>/<interface>.<function>.
	Operation string

	// FuncName is the Go method name.
	FuncName string

	// Args are the invocation arguments in declaration order, after
	// optional record flattening.
	Args []Arg

	// Return is nil for void functions.
	Return *Return

	Direction Direction
	Iface     *catalog.Interface
	Source    *wit.Function
}
