// Package sdk is the runtime support library for generated lattice bindings.
//
// Code emitted by the bindgen package does not stand alone: every generated
// dispatch arm, import stub and subject table references the types and helpers
// in this package. Nothing here performs transport I/O; the transport is
// reached only through the Client interface supplied by the host.
//
// # Key Types
//
//	Context          - per-invocation routing metadata, embeds context.Context
//	Value            - one wire-encoded transport value (msgpack payload)
//	Client           - outbound call primitive, safe for concurrent use
//	Dispatcher       - inbound call entry point implemented by generated code
//	SubjectEntry     - subject table row: world key, function, descriptor
//	DynamicFunction  - serialized structural shape for late-bound marshalling
//	ProviderHandler  - host lifecycle contract with ProviderBase no-op defaults
//
// # Wire Shape
//
// Arguments travel as independent msgpack values, one Value per declared
// argument, in declaration order. A WIT result return is framed as a
// two-element array [discriminant, payload]; a plain return is the bare
// payload. Associative structures without a native wire representation
// travel as ordered key/value pair lists (see MapToPairs / PairsToMap).
//
// # Thread Safety
//
// All tables built by generated code are immutable after construction and
// shared freely across concurrent invocations. Client implementations must
// support concurrent multiplexed use; this package adds no locking of its own.
package sdk
