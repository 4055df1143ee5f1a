package lattice

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/errors"
	"github.com/wippyai/lattice-bindgen/sdk"
)

// Descriptor builds the serializable structural description of one
// function for late-bound marshalling. The descriptor always reflects the
// wire shape: witified maps stay pair lists here even when the generated
// signature presents a native map.
func Descriptor(fn *wit.Function) (sdk.DynamicFunction, error) {
	desc := sdk.DynamicFunction{
		Params: make([]sdk.DynamicParam, 0, len(fn.Params)),
	}

	for _, p := range fn.Params {
		dt, err := dynamicType(p.Type, []string{fn.Name, p.Name})
		if err != nil {
			return sdk.DynamicFunction{}, err
		}
		desc.Params = append(desc.Params, sdk.DynamicParam{
			Name: ToKebabCase(p.Name),
			Type: dt,
		})
	}

	result, err := resultType(fn)
	if err != nil {
		return sdk.DynamicFunction{}, err
	}
	if result != nil {
		dt, err := dynamicType(result, []string{fn.Name, "[result]"})
		if err != nil {
			return sdk.DynamicFunction{}, err
		}
		desc.Result = &dt
	}

	return desc, nil
}

func dynamicType(t wit.Type, path []string) (sdk.DynamicType, error) {
	switch v := t.(type) {
	case wit.Bool:
		return sdk.DynamicType{Kind: "bool"}, nil
	case wit.U8:
		return sdk.DynamicType{Kind: "u8"}, nil
	case wit.S8:
		return sdk.DynamicType{Kind: "s8"}, nil
	case wit.U16:
		return sdk.DynamicType{Kind: "u16"}, nil
	case wit.S16:
		return sdk.DynamicType{Kind: "s16"}, nil
	case wit.U32:
		return sdk.DynamicType{Kind: "u32"}, nil
	case wit.S32:
		return sdk.DynamicType{Kind: "s32"}, nil
	case wit.U64:
		return sdk.DynamicType{Kind: "u64"}, nil
	case wit.S64:
		return sdk.DynamicType{Kind: "s64"}, nil
	case wit.F32:
		return sdk.DynamicType{Kind: "f32"}, nil
	case wit.F64:
		return sdk.DynamicType{Kind: "f64"}, nil
	case wit.Char:
		return sdk.DynamicType{Kind: "char"}, nil
	case wit.String:
		return sdk.DynamicType{Kind: "string"}, nil
	case *wit.TypeDef:
		return dynamicTypeDef(v, path)
	default:
		return sdk.DynamicType{}, errors.Unsupported(errors.PhaseTranslate, path, "unsupported wire type")
	}
}

func dynamicTypeDef(td *wit.TypeDef, path []string) (sdk.DynamicType, error) {
	name := ""
	if td.Name != nil {
		name = ToKebabCase(*td.Name)
	}

	switch k := td.Kind.(type) {
	case *wit.Record:
		dt := sdk.DynamicType{Kind: "record", Name: name}
		for _, f := range k.Fields {
			ft, err := dynamicType(f.Type, childPath(path, f.Name))
			if err != nil {
				return sdk.DynamicType{}, err
			}
			dt.Fields = append(dt.Fields, sdk.DynamicField{Name: ToKebabCase(f.Name), Type: ft})
		}
		return dt, nil
	case *wit.Variant:
		dt := sdk.DynamicType{Kind: "variant", Name: name}
		for _, c := range k.Cases {
			dc := sdk.DynamicCase{Name: ToKebabCase(c.Name)}
			if c.Type != nil {
				ct, err := dynamicType(c.Type, childPath(path, c.Name))
				if err != nil {
					return sdk.DynamicType{}, err
				}
				dc.Type = &ct
			}
			dt.Cases = append(dt.Cases, dc)
		}
		return dt, nil
	case *wit.Enum:
		dt := sdk.DynamicType{Kind: "enum", Name: name}
		for _, c := range k.Cases {
			dt.Cases = append(dt.Cases, sdk.DynamicCase{Name: ToKebabCase(c.Name)})
		}
		return dt, nil
	case *wit.Flags:
		dt := sdk.DynamicType{Kind: "flags", Name: name}
		for _, f := range k.Flags {
			dt.Cases = append(dt.Cases, sdk.DynamicCase{Name: ToKebabCase(f.Name)})
		}
		return dt, nil
	case *wit.List:
		elem, err := dynamicType(k.Type, childPath(path, "[elem]"))
		if err != nil {
			return sdk.DynamicType{}, err
		}
		return sdk.DynamicType{Kind: "list", Name: name, Elem: &elem}, nil
	case *wit.Option:
		elem, err := dynamicType(k.Type, childPath(path, "[some]"))
		if err != nil {
			return sdk.DynamicType{}, err
		}
		return sdk.DynamicType{Kind: "option", Name: name, Elem: &elem}, nil
	case *wit.Tuple:
		dt := sdk.DynamicType{Kind: "tuple", Name: name}
		for _, elem := range k.Types {
			et, err := dynamicType(elem, childPath(path, "[tuple]"))
			if err != nil {
				return sdk.DynamicType{}, err
			}
			dt.Types = append(dt.Types, et)
		}
		return dt, nil
	case *wit.Result:
		dt := sdk.DynamicType{Kind: "result", Name: name}
		if k.OK != nil {
			ok, err := dynamicType(k.OK, childPath(path, "[ok]"))
			if err != nil {
				return sdk.DynamicType{}, err
			}
			dt.OK = &ok
		}
		if k.Err != nil {
			errT, err := dynamicType(k.Err, childPath(path, "[err]"))
			if err != nil {
				return sdk.DynamicType{}, err
			}
			dt.Err = &errT
		}
		return dt, nil
	case wit.Type:
		// Alias: describe the aliased shape but keep the declared name.
		dt, err := dynamicType(k, path)
		if err != nil {
			return sdk.DynamicType{}, err
		}
		if dt.Name == "" {
			dt.Name = name
		}
		return dt, nil
	default:
		return sdk.DynamicType{}, errors.Unsupported(errors.PhaseTranslate, path, "unsupported type constructor")
	}
}
