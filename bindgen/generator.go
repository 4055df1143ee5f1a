package bindgen

import (
	"bytes"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/lattice-bindgen/catalog"
	"github.com/wippyai/lattice-bindgen/errors"
	"github.com/wippyai/lattice-bindgen/lattice"
)

// boundInterface is one interface after translation: the (possibly
// overridden) identity plus its methods in emission order.
type boundInterface struct {
	iface   *catalog.Interface
	methods []*lattice.Method
}

// Generate compiles one binding file for the configured world. Any
// failure aborts the whole run; no partial output is returned.
func Generate(res *wit.Resolve, cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.InvalidConfig("nil binding configuration", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := catalog.Build(res, cfg.World)
	if err != nil {
		return nil, err
	}

	opts := lattice.Options{ReplaceWitifiedMaps: cfg.ReplaceWitifiedMaps}

	exports, err := bindExports(cat, cfg, opts)
	if err != nil {
		return nil, err
	}
	imports, err := bindImports(cat, cfg, opts)
	if err != nil {
		return nil, err
	}

	if err := checkOperations(exports); err != nil {
		return nil, err
	}
	if err := checkStubNames(imports); err != nil {
		return nil, err
	}

	Logger().Debug("bound world",
		zap.String("world", cfg.World),
		zap.Int("exports", len(exports)),
		zap.Int("imports", len(imports)))

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by lattice-bindgen. DO NOT EDIT.")

	writeAliases(f, &cat.Types)
	for _, b := range exports {
		if err := writeCapabilityInterface(f, cfg, b); err != nil {
			return nil, err
		}
	}
	writeConformance(f, cfg, exports)
	if err := writeDispatch(f, cfg, exports); err != nil {
		return nil, err
	}
	if err := writeSubjects(f, cfg, exports); err != nil {
		return nil, err
	}
	if err := writeInvocationHandler(f, imports); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseEmit, errors.KindUnexpected, err, "render bindings")
	}
	return buf.Bytes(), nil
}

func bindExports(cat *catalog.Catalog, cfg *Config, opts lattice.Options) ([]boundInterface, error) {
	var bound []boundInterface
	for _, iface := range sortInterfaces(cat.Exports, cfg) {
		if !cfg.exposed(iface) {
			continue
		}
		b := boundInterface{iface: iface}
		for _, fn := range iface.Functions {
			m, err := lattice.TranslateExport(iface, fn, &cat.Types, opts)
			if err != nil {
				return nil, err
			}
			b.methods = append(b.methods, m)
		}
		sortMethods(b.methods)
		bound = append(bound, b)
	}
	return bound, nil
}

func bindImports(cat *catalog.Catalog, cfg *Config, opts lattice.Options) ([]boundInterface, error) {
	var bound []boundInterface
	for _, iface := range sortInterfaces(cat.Imports, cfg) {
		if cfg.ignoreImport(lattice.ToKebabCase(iface.Namespace), lattice.ToKebabCase(iface.Package)) {
			continue
		}
		b := boundInterface{iface: iface}
		for _, fn := range iface.Functions {
			m, err := lattice.TranslateImport(iface, fn, &cat.Types, opts)
			if err != nil {
				return nil, err
			}
			b.methods = append(b.methods, m)
		}
		sortMethods(b.methods)
		bound = append(bound, b)
	}
	return bound, nil
}

// sortInterfaces applies the configured path overrides, then orders
// interfaces by canonical path so repeated runs emit identical bytes.
func sortInterfaces(ifaces []*catalog.Interface, cfg *Config) []*catalog.Interface {
	out := make([]*catalog.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		resolved := *iface
		if cfg.WitNamespace != nil {
			resolved.Namespace = *cfg.WitNamespace
		}
		if cfg.WitPackage != nil {
			resolved.Package = *cfg.WitPackage
		}
		out = append(out, &resolved)
	}
	slices.SortFunc(out, func(a, b *catalog.Interface) int {
		return strings.Compare(a.Path(), b.Path())
	})
	return out
}

func sortMethods(methods []*lattice.Method) {
	slices.SortFunc(methods, func(a, b *lattice.Method) int {
		return strings.Compare(a.Operation, b.Operation)
	})
}

// writeAliases re-declares the surviving plain type aliases. Record and
// variant declarations belong to the base binding generator; aliases it
// does not know about are declared here so generated signatures resolve.
func writeAliases(f *jen.File, types *catalog.Set) {
	names := make([]string, 0, len(types.Aliases))
	for name := range types.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		def := types.Aliases[name].Def
		target, ok := def.Kind.(wit.Type)
		if !ok {
			// Named constructors (flags, results) are owned by the base
			// generator like records are.
			continue
		}
		rendered, err := goType(target, []string{name})
		if err != nil {
			Logger().Debug("skipping unrenderable alias", zap.String("alias", name))
			continue
		}
		f.Type().Id(lattice.ToUpperCamel(name)).Op("=").Add(rendered)
	}
}

// checkOperations enforces operation-name uniqueness across all exported
// interfaces. Operations address both dispatch arms and wire subjects, so
// a collision anywhere in the world is fatal.
func checkOperations(exports []boundInterface) error {
	seen := make(map[string]string)
	for _, b := range exports {
		for _, m := range b.methods {
			if prev, dup := seen[m.Operation]; dup {
				if prev == b.iface.Path() {
					return errors.DuplicateOperation(b.iface.Path(), m.Operation)
				}
				return errors.DuplicateSubject(m.Operation)
			}
			seen[m.Operation] = b.iface.Path()
		}
	}
	return nil
}

// checkStubNames rejects import sets whose stub methods would collide on
// the shared invocation handler.
func checkStubNames(imports []boundInterface) error {
	seen := make(map[string]string)
	for _, b := range imports {
		for _, m := range b.methods {
			if prev, dup := seen[m.FuncName]; dup {
				return errors.New(errors.PhaseGenerate, errors.KindDuplicateOperation).
					Detail("stub method [%s] generated by both [%s] and [%s]", m.FuncName, prev, b.iface.Path()).
					Value(m.FuncName).
					Build()
			}
			seen[m.FuncName] = b.iface.Path()
		}
	}
	return nil
}
