package bindgen

import (
	"github.com/dave/jennifer/jen"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/errors"
	"github.com/wippyai/lattice-bindgen/lattice"
)

const sdkPath = "github.com/wippyai/lattice-bindgen/sdk"

// argType renders the Go type of one translated argument, honoring an
// active map translation.
func argType(arg lattice.Arg) (jen.Code, error) {
	if arg.Map != nil {
		key, err := goType(arg.Map.Key, []string{arg.Name, "[key]"})
		if err != nil {
			return nil, err
		}
		val, err := goType(arg.Map.Value, []string{arg.Name, "[value]"})
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(val), nil
	}
	return goType(arg.Type, []string{arg.Name})
}

// pairType renders the wire pair-list type backing a translated map, used
// at the encode/decode boundary.
func pairType(shape *lattice.MapShape, path []string) (jen.Code, error) {
	key, err := goType(shape.Key, append(path, "[key]"))
	if err != nil {
		return nil, err
	}
	val, err := goType(shape.Value, append(path, "[value]"))
	if err != nil {
		return nil, err
	}
	return jen.Index().Qual(sdkPath, "Pair").Index(jen.List(key, val)), nil
}

// goType renders a wire type as Go source. Named declarations resolve to
// their upper-camel identifiers; the Base Binding Generator declares those
// types in the same package.
func goType(t wit.Type, path []string) (jen.Code, error) {
	switch v := t.(type) {
	case wit.Bool:
		return jen.Bool(), nil
	case wit.U8:
		return jen.Uint8(), nil
	case wit.S8:
		return jen.Int8(), nil
	case wit.U16:
		return jen.Uint16(), nil
	case wit.S16:
		return jen.Int16(), nil
	case wit.U32:
		return jen.Uint32(), nil
	case wit.S32:
		return jen.Int32(), nil
	case wit.U64:
		return jen.Uint64(), nil
	case wit.S64:
		return jen.Int64(), nil
	case wit.F32:
		return jen.Float32(), nil
	case wit.F64:
		return jen.Float64(), nil
	case wit.Char:
		return jen.Rune(), nil
	case wit.String:
		return jen.String(), nil
	case *wit.TypeDef:
		return goTypeDef(v, path)
	default:
		return nil, errors.Unsupported(errors.PhaseGenerate, path, "unsupported wire type")
	}
}

func goTypeDef(td *wit.TypeDef, path []string) (jen.Code, error) {
	if td.Name != nil {
		return jen.Id(lattice.ToUpperCamel(*td.Name)), nil
	}

	switch k := td.Kind.(type) {
	case *wit.List:
		elem, err := goType(k.Type, append(path, "[elem]"))
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case *wit.Option:
		elem, err := goType(k.Type, append(path, "[some]"))
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case *wit.Tuple:
		if len(k.Types) == 2 {
			key, err := goType(k.Types[0], append(path, "[0]"))
			if err != nil {
				return nil, err
			}
			val, err := goType(k.Types[1], append(path, "[1]"))
			if err != nil {
				return nil, err
			}
			return jen.Qual(sdkPath, "Pair").Index(jen.List(key, val)), nil
		}
		return nil, errors.Unsupported(errors.PhaseGenerate, path, "tuples with more than two elements have no signature rendering")
	case wit.Type:
		return goType(k, path)
	default:
		return nil, errors.Unsupported(errors.PhaseGenerate, path, "anonymous type constructor has no signature rendering")
	}
}

// returnTypes renders the Go return list for a translated method. Every
// generated method returns an error so handler and transport failures
// propagate uniformly.
func returnTypes(ret *lattice.Return, path []string) ([]jen.Code, error) {
	if ret == nil {
		return []jen.Code{jen.Error()}, nil
	}

	if ret.IsResult {
		if ret.OK == nil {
			return []jen.Code{jen.Error()}, nil
		}
		ok, err := goType(ret.OK, append(path, "[ok]"))
		if err != nil {
			return nil, err
		}
		return []jen.Code{ok, jen.Error()}, nil
	}

	t, err := goType(ret.Type, append(path, "[result]"))
	if err != nil {
		return nil, err
	}
	return []jen.Code{t, jen.Error()}, nil
}

// hasPayload reports whether the translated return carries a value
// alongside the error.
func hasPayload(ret *lattice.Return) bool {
	if ret == nil {
		return false
	}
	if ret.IsResult {
		return ret.OK != nil
	}
	return true
}
