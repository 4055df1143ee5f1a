// Package catalog extracts name-keyed type and method lookup tables from a
// resolved interface graph.
//
// The binding generator needs three catalogs to make translation decisions:
// record types (flattening candidates), variant types, and plain aliases,
// plus the list of declared methods per interface. Earlier toolchains
// recovered this information by scraping generated binding source; here the
// Interface Resolver hands over its typed IR (go.bytecodealliance.org/wit)
// and the catalogs are read straight off the graph.
//
// Catalog contents are built once per generation run from a fixed input
// graph and never mutated afterward.
package catalog
