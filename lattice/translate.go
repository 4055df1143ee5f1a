package lattice

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/catalog"
	"github.com/wippyai/lattice-bindgen/errors"
)

// Options control signature translation.
type Options struct {
	// ReplaceWitifiedMaps presents list<tuple<k, v>> parameters and
	// flattened fields as native Go maps, with the inverse conversion
	// emitted at the encode site.
	ReplaceWitifiedMaps bool
}

// TranslateExport normalizes one exported function into a lattice method
// served by the provider implementation.
func TranslateExport(iface *catalog.Interface, fn *wit.Function, cats *catalog.Set, opts Options) (*Method, error) {
	dir := Export{InterfaceIdent: InterfaceIdent(iface.Namespace, iface.Package, iface.Name)}
	return translate(iface, fn, cats, opts, dir)
}

// TranslateImport normalizes one imported function into a stub method on
// the component's invocation handler.
func TranslateImport(iface *catalog.Interface, fn *wit.Function, cats *catalog.Set, opts Options) (*Method, error) {
	return translate(iface, fn, cats, opts, Import{HandlerName: "InvocationHandler"})
}

func translate(iface *catalog.Interface, fn *wit.Function, cats *catalog.Set, opts Options, dir Direction) (*Method, error) {
	if iface.Namespace == "" || iface.Package == "" || iface.Name == "" {
		return nil, errors.MalformedPath(iface.Path())
	}

	m := &Method{
		Operation: OperationName(iface.Namespace, iface.Package, iface.Name, fn.Name),
		FuncName:  ToUpperCamel(fn.Name),
		Direction: dir,
		Iface:     iface,
		Source:    fn,
	}

	args, err := buildArgs(fn, cats, opts)
	if err != nil {
		return nil, err
	}
	m.Args = args

	ret, err := buildReturn(fn, cats)
	if err != nil {
		return nil, err
	}
	m.Return = ret

	return m, nil
}

// buildArgs applies the record flattening rule: a sole parameter whose
// type names a catalogued record is replaced by the record's own fields in
// declared order. A sole parameter of any other type, and every multi-
// parameter signature, passes through unchanged.
func buildArgs(fn *wit.Function, cats *catalog.Set, opts Options) ([]Arg, error) {
	if len(fn.Params) == 1 {
		if record, ok := cats.ResolveRecord(fn.Params[0].Type); ok {
			args := make([]Arg, 0, len(record.Fields))
			for _, field := range record.Fields {
				arg, err := buildArg(fn.Name, field.Name, field.Type, cats, opts)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			return args, nil
		}
	}

	args := make([]Arg, 0, len(fn.Params))
	for _, param := range fn.Params {
		arg, err := buildArg(fn.Name, param.Name, param.Type, cats, opts)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func buildArg(fnName, name string, t wit.Type, cats *catalog.Set, opts Options) (Arg, error) {
	if err := validateType(t, []string{fnName, name}, cats); err != nil {
		return Arg{}, err
	}

	arg := Arg{
		Name:   ToKebabCase(name),
		GoName: GoArgName(name),
		Type:   t,
	}
	if opts.ReplaceWitifiedMaps {
		arg.Map = witifiedMapShape(t)
	}
	return arg, nil
}

// resultType reads the function's declared return. At most one anonymous
// result crosses the lattice; named and multi-value results have no wire
// framing.
func resultType(fn *wit.Function) (wit.Type, error) {
	switch len(fn.Results) {
	case 0:
		return nil, nil
	case 1:
		if fn.Results[0].Name != "" {
			return nil, errors.Unsupported(errors.PhaseTranslate, []string{fn.Name, "[result]"}, "named results are not supported")
		}
		return fn.Results[0].Type, nil
	default:
		return nil, errors.Unsupported(errors.PhaseTranslate, []string{fn.Name, "[result]"}, "multiple results are not supported")
	}
}

func buildReturn(fn *wit.Function, cats *catalog.Set) (*Return, error) {
	result, err := resultType(fn)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	if err := validateType(result, []string{fn.Name, "[result]"}, cats); err != nil {
		return nil, err
	}

	ret := &Return{Type: result}
	if td, ok := result.(*wit.TypeDef); ok {
		if r, isResult := td.Kind.(*wit.Result); isResult {
			ret.IsResult = true
			ret.OK = r.OK
			ret.Err = r.Err
		}
	}
	return ret, nil
}

// validateType checks that every named type a signature references can be
// resolved in some catalog. An unresolved reference aborts the whole
// generation run.
func validateType(t wit.Type, path []string, cats *catalog.Set) error {
	if t == nil {
		return nil
	}

	td, ok := t.(*wit.TypeDef)
	if !ok {
		// Primitive.
		return nil
	}

	if td.Name != nil {
		if !cats.Resolvable(*td.Name) {
			return errors.UnresolvedType(errors.PhaseTranslate, path, *td.Name)
		}
		// Named declarations were validated when catalogued; the
		// reference itself is enough here.
		return nil
	}

	switch k := td.Kind.(type) {
	case *wit.List:
		return validateType(k.Type, childPath(path, "[elem]"), cats)
	case *wit.Option:
		return validateType(k.Type, childPath(path, "[some]"), cats)
	case *wit.Tuple:
		for _, elem := range k.Types {
			if err := validateType(elem, childPath(path, "[tuple]"), cats); err != nil {
				return err
			}
		}
		return nil
	case *wit.Result:
		if err := validateType(k.OK, childPath(path, "[ok]"), cats); err != nil {
			return err
		}
		return validateType(k.Err, childPath(path, "[err]"), cats)
	case *wit.Record:
		for _, f := range k.Fields {
			if err := validateType(f.Type, childPath(path, f.Name), cats); err != nil {
				return err
			}
		}
		return nil
	case *wit.Variant:
		for _, c := range k.Cases {
			if err := validateType(c.Type, childPath(path, c.Name), cats); err != nil {
				return err
			}
		}
		return nil
	case *wit.Enum, *wit.Flags:
		return nil
	case *wit.Own, *wit.Borrow:
		return errors.Unsupported(errors.PhaseTranslate, path, "resource handles cannot cross the lattice")
	case wit.Type:
		return validateType(k, path, cats)
	default:
		return errors.Unsupported(errors.PhaseTranslate, path, "unsupported type constructor")
	}
}

func childPath(path []string, seg string) []string {
	return append(append([]string{}, path...), seg)
}

// witifiedMapShape recognizes an anonymous list<tuple<k, v>>, the
// wire-safe representation of an associative structure. Named aliases of
// the same shape keep their declared identity and are not translated. The
// key must be an orderable primitive so encode output can be sorted
// deterministically.
func witifiedMapShape(t wit.Type) *MapShape {
	td, ok := t.(*wit.TypeDef)
	if !ok || td.Name != nil {
		return nil
	}
	list, ok := td.Kind.(*wit.List)
	if !ok {
		return nil
	}
	elem, ok := list.Type.(*wit.TypeDef)
	if !ok || elem.Name != nil {
		return nil
	}
	tuple, ok := elem.Kind.(*wit.Tuple)
	if !ok || len(tuple.Types) != 2 {
		return nil
	}
	if !orderedKey(tuple.Types[0]) {
		return nil
	}
	return &MapShape{Key: tuple.Types[0], Value: tuple.Types[1]}
}

func orderedKey(t wit.Type) bool {
	switch t.(type) {
	case wit.String, wit.Char,
		wit.U8, wit.U16, wit.U32, wit.U64,
		wit.S8, wit.S16, wit.S32, wit.S64,
		wit.F32, wit.F64:
		return true
	default:
		return false
	}
}
