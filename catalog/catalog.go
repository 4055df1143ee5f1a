package catalog

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/errors"
)

// Entry is one catalogued type declaration: the qualified path of the
// interface (or world) that declared it, and the definition itself.
type Entry struct {
	Path string
	Def  *wit.TypeDef
}

// Set holds the three name-keyed type catalogs. Type names are assumed
// unique per catalog across the whole graph; on a collision the first
// declaration in traversal order wins.
type Set struct {
	Records  map[string]Entry // record types
	Variants map[string]Entry // variant and enum types
	Aliases  map[string]Entry // plain type aliases
}

// Interface is one lattice-visible interface addressed by its
// (namespace, package, interface) triple.
type Interface struct {
	Namespace string
	Package   string
	Name      string
	Functions []*wit.Function
	Iface     *wit.Interface
}

// Path returns the raw interface path, namespace:package/name.
func (i *Interface) Path() string {
	return i.Namespace + ":" + i.Package + "/" + i.Name
}

// Catalog is the full extraction result for one world: the interfaces the
// component exports and imports, the type catalogs, and the per-interface
// method declarations.
type Catalog struct {
	Exports []*Interface
	Imports []*Interface
	Types   Set
	Methods map[string][]*wit.Function
}

// Build extracts catalogs from a resolved interface graph. The world is
// selected by name; an empty name is allowed only when the graph contains
// exactly one world. Malformed graphs (interface without a package or a
// name) are fatal.
func Build(res *wit.Resolve, world string) (*Catalog, error) {
	w, err := selectWorld(res, world)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		Types: Set{
			Records:  make(map[string]Entry),
			Variants: make(map[string]Entry),
			Aliases:  make(map[string]Entry),
		},
		Methods: make(map[string][]*wit.Function),
	}

	for _, item := range w.Exports.All() {
		iface, ok := item.(*wit.InterfaceRef)
		if !ok {
			continue
		}
		described, err := cat.collect(iface.Interface)
		if err != nil {
			return nil, err
		}
		cat.Exports = append(cat.Exports, described)
	}

	for _, item := range w.Imports.All() {
		switch it := item.(type) {
		case *wit.InterfaceRef:
			described, err := cat.collect(it.Interface)
			if err != nil {
				return nil, err
			}
			cat.Imports = append(cat.Imports, described)
		case *wit.TypeDef:
			// Types used directly at world level still feed the catalogs.
			cat.catalogType(w.Name, it)
		}
	}

	// An alias that only renames a catalogued record or variant would emit
	// a duplicate definition; drop it from the emitted type list.
	for name := range cat.Types.Aliases {
		if _, shadowed := cat.Types.Records[name]; shadowed {
			delete(cat.Types.Aliases, name)
			continue
		}
		if _, shadowed := cat.Types.Variants[name]; shadowed {
			delete(cat.Types.Aliases, name)
		}
	}

	return cat, nil
}

func selectWorld(res *wit.Resolve, world string) (*wit.World, error) {
	if res == nil {
		return nil, errors.InvalidInput(errors.PhaseResolve, "nil interface graph")
	}

	if world == "" {
		if len(res.Worlds) != 1 {
			return nil, errors.InvalidInput(errors.PhaseResolve, "world name required when the graph defines more than one world")
		}
		return res.Worlds[0], nil
	}

	for _, w := range res.Worlds {
		if w.Name == world {
			return w, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseResolve, "world", world)
}

// collect describes one interface and folds its declarations into the
// catalogs.
func (c *Catalog) collect(iface *wit.Interface) (*Interface, error) {
	if iface == nil || iface.Package == nil {
		return nil, errors.InvalidInput(errors.PhaseResolve, "interface without an owning package")
	}
	if iface.Name == nil {
		return nil, errors.InvalidInput(errors.PhaseResolve, "inline interfaces have no lattice identity")
	}

	described := &Interface{
		Namespace: iface.Package.Name.Namespace,
		Package:   iface.Package.Name.Package,
		Name:      *iface.Name,
		Iface:     iface,
	}

	for _, td := range iface.TypeDefs.All() {
		c.catalogType(described.Path(), td)
	}

	for _, fn := range iface.Functions.All() {
		if !fn.IsFreestanding() {
			continue
		}
		described.Functions = append(described.Functions, fn)
	}

	c.Methods[described.Path()] = described.Functions
	return described, nil
}

// catalogType files one named type declaration under its simple name.
// Anonymous types are structural and never catalogued.
func (c *Catalog) catalogType(path string, td *wit.TypeDef) {
	if td == nil || td.Name == nil {
		return
	}
	name := *td.Name

	switch td.Kind.(type) {
	case *wit.Record:
		if _, exists := c.Types.Records[name]; !exists {
			c.Types.Records[name] = Entry{Path: path, Def: td}
		}
	case *wit.Variant, *wit.Enum:
		if _, exists := c.Types.Variants[name]; !exists {
			c.Types.Variants[name] = Entry{Path: path, Def: td}
		}
	default:
		// Everything else a signature can reference by name (plain aliases,
		// named lists, options, flags, results) files as an alias.
		if _, exists := c.Types.Aliases[name]; !exists {
			c.Types.Aliases[name] = Entry{Path: path, Def: td}
		}
	}
}

// Resolvable reports whether a type name appears in any catalog.
func (s *Set) Resolvable(name string) bool {
	if _, ok := s.Records[name]; ok {
		return true
	}
	if _, ok := s.Variants[name]; ok {
		return true
	}
	_, ok := s.Aliases[name]
	return ok
}

// ResolveRecord reports whether t names a record in the catalog, following
// alias chains. Flattening decisions key off this lookup.
func (s *Set) ResolveRecord(t wit.Type) (*wit.Record, bool) {
	// Alias chains in a well-formed graph are short; the bound only guards
	// against cyclic input.
	for hops := 0; hops < 32; hops++ {
		td, ok := t.(*wit.TypeDef)
		if !ok {
			return nil, false
		}

		if td.Name != nil {
			if e, found := s.Records[*td.Name]; found {
				if r, isRecord := e.Def.Kind.(*wit.Record); isRecord {
					return r, true
				}
			}
		}

		next, isAlias := td.Kind.(wit.Type)
		if !isAlias {
			return nil, false
		}
		t = next
	}
	return nil, false
}
