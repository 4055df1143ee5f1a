// Package errors provides structured error types for the lattice binding compiler.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element path, Go/WIT type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTranslate, errors.KindUnresolvedType).
//		Path("key-value", "get").
//		WitType("bucket").
//		Detail("referenced type is not declared by any interface").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnresolvedType(errors.PhaseTranslate, path, "bucket")
//	err := errors.MalformedPath("keyvalue/key-value")
//
// Generation-phase errors (resolve, translate, generate, emit, config) are always
// fatal and abort the whole run; no partial bindings are ever written. The decode,
// encode, dispatch and invoke phases describe failures local to one invocation in
// code this compiler emits.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
