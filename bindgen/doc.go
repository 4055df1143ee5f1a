// Package bindgen assembles one Go source file of lattice provider
// bindings from a resolved interface graph and a binding configuration.
//
// # Pipeline
//
//	┌──────────────┐   ┌────────────┐   ┌───────────────────────────┐
//	│ wit.Resolve  │ → │ catalog /  │ → │ bindgen emitters          │
//	│ (typed IR)   │   │ lattice    │   │ (jennifer → source bytes) │
//	└──────────────┘   └────────────┘   └───────────────────────────┘
//
// Generate walks the configured world once, translates every exposed
// function into a lattice method, and emits:
//
//	Capability interfaces   - one per exported interface, plus a
//	                          <Iface>ContractID accessor
//	Dispatch                - inbound routing on the impl struct
//	IncomingInvocationSubjects - wire subject → call descriptor table
//	InvocationHandler       - typed stubs for imported functions
//
// # Determinism
//
// Interfaces and functions are sorted by canonical name before emission;
// two runs over the same inputs produce identical bytes.
//
// # Failure mode
//
// Every generation error is fatal to the whole run. Generate never
// returns partial output.
package bindgen
