// Package lattice normalizes typed function signatures into lattice
// method descriptions.
//
// A lattice method is the single source of truth the builders share: the
// canonical operation name, the ordered argument list after optional record
// flattening, the return shape, and the translation direction (export vs
// import) as a tagged variant.
//
// # Naming
//
// The operation name <namespace>:<package>/<interface>.<function> is the
// wire contract between caller and callee. Each segment is kebab-cased
// independently; the capability-interface identifier is the same three
// path segments upper-camel-cased and concatenated.
//
// # Record Flattening
//
// Transport conventions often bundle arguments into a single record
// parameter. When a function declares exactly one parameter and its type
// names a catalogued record, the record's fields become the method's
// arguments, in declared field order. Anything else passes through as
// declared.
//
// # Witified Maps
//
// With map translation enabled, an anonymous list<tuple<k, v>> parameter
// or flattened field is presented as a native Go map in the generated
// signature. Wire descriptors always keep the pair-list shape.
package lattice
