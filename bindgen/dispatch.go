package bindgen

import (
	"github.com/dave/jennifer/jen"

	"github.com/wippyai/lattice-bindgen/lattice"
)

// writeCapabilityInterface emits the typed contract one exported
// interface imposes on the implementation struct, plus its contract
// accessor.
func writeCapabilityInterface(f *jen.File, cfg *Config, b boundInterface) error {
	ident := lattice.InterfaceIdent(b.iface.Namespace, b.iface.Package, b.iface.Name)

	var methods []jen.Code
	for _, m := range b.methods {
		sig, err := handlerSignature(m)
		if err != nil {
			return err
		}
		methods = append(methods, sig)
	}

	f.Commentf("%s is the capability contract of %s.", ident, b.iface.Path())
	f.Type().Id(ident).Interface(methods...)

	f.Func().Id(ident + "ContractID").Params().String().Block(
		jen.Return(jen.Lit(cfg.Contract)),
	)
	return nil
}

// handlerSignature renders one handler method declaration: invocation
// context first, then the translated arguments.
func handlerSignature(m *lattice.Method) (jen.Code, error) {
	params := []jen.Code{jen.Id("ctx").Qual(sdkPath, "Context")}
	for _, arg := range m.Args {
		t, err := argType(arg)
		if err != nil {
			return nil, err
		}
		params = append(params, jen.Id(arg.GoName).Add(t))
	}

	returns, err := returnTypes(m.Return, []string{m.Operation})
	if err != nil {
		return nil, err
	}
	return jen.Id(m.FuncName).Params(params...).Params(returns...), nil
}

// writeConformance emits the compile-time asserts tying the
// implementation struct to every generated contract.
func writeConformance(f *jen.File, cfg *Config, exports []boundInterface) {
	impl := jen.Parens(jen.Op("*").Id(cfg.ImplStruct)).Call(jen.Nil())

	for _, b := range exports {
		ident := lattice.InterfaceIdent(b.iface.Namespace, b.iface.Package, b.iface.Name)
		f.Var().Id("_").Id(ident).Op("=").Add(impl.Clone())
	}
	f.Var().Id("_").Qual(sdkPath, "Dispatcher").Op("=").Add(impl.Clone())
	f.Var().Id("_").Qual(sdkPath, "SubjectMapper").Op("=").Add(impl.Clone())
	f.Var().Id("_").Qual(sdkPath, "ProviderHandler").Op("=").Add(impl.Clone())
}

// writeDispatch emits the inbound routing method: a switch over literal
// operation names whose arms decode arguments front-first in declaration
// order, invoke the handler, and encode the response.
func writeDispatch(f *jen.File, cfg *Config, exports []boundInterface) error {
	var cases []jen.Code
	for _, b := range exports {
		for _, m := range b.methods {
			arm, err := dispatchArm(m)
			if err != nil {
				return err
			}
			cases = append(cases, jen.Case(jen.Lit(m.Operation)).Block(arm...))
		}
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Nil(), jen.Qual(sdkPath, "MalformedOperation").Call(jen.Id("operation"))),
	))

	f.Comment("Dispatch routes one inbound invocation to its typed handler method.")
	f.Func().
		Params(jen.Id("p").Op("*").Id(cfg.ImplStruct)).
		Id("Dispatch").
		Params(
			jen.Id("ctx").Qual(sdkPath, "Context"),
			jen.Id("operation").String(),
			jen.Id("params").Index().Qual(sdkPath, "Value"),
		).
		Params(jen.Index().Byte(), jen.Error()).
		Block(jen.Switch(jen.Id("operation")).Block(cases...))
	return nil
}

func dispatchArm(m *lattice.Method) ([]jen.Code, error) {
	var stmts []jen.Code
	callArgs := []jen.Code{jen.Id("ctx")}

	for i, arg := range m.Args {
		decode, err := decodeArg(i, arg)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, decode...)
		callArgs = append(callArgs, jen.Id(arg.GoName))
	}

	call := jen.Id("p").Dot(m.FuncName).Call(callArgs...)

	switch {
	case m.Return != nil && m.Return.IsResult && m.Return.OK != nil:
		stmts = append(stmts,
			jen.List(jen.Id("out"), jen.Id("callErr")).Op(":=").Add(call),
			jen.Return(jen.Qual(sdkPath, "EncodeResult").Call(jen.Lit(m.Operation), jen.Id("out"), jen.Id("callErr"))),
		)
	case m.Return != nil && m.Return.IsResult:
		stmts = append(stmts,
			jen.Id("callErr").Op(":=").Add(call),
			jen.Return(jen.Qual(sdkPath, "EncodeResult").Call(jen.Lit(m.Operation), jen.Nil(), jen.Id("callErr"))),
		)
	case m.Return != nil:
		stmts = append(stmts,
			jen.List(jen.Id("out"), jen.Id("callErr")).Op(":=").Add(call),
			jen.If(jen.Id("callErr").Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(sdkPath, "HandlerFailed").Call(jen.Lit(m.Operation), jen.Id("callErr"))),
			),
			jen.Return(jen.Qual(sdkPath, "EncodeReturn").Call(jen.Lit(m.Operation), jen.Id("out"))),
		)
	default:
		stmts = append(stmts,
			jen.If(jen.Id("callErr").Op(":=").Add(call), jen.Id("callErr").Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(sdkPath, "HandlerFailed").Call(jen.Lit(m.Operation), jen.Id("callErr"))),
			),
			jen.Return(jen.Qual(sdkPath, "EncodeReturn").Call(jen.Lit(m.Operation), jen.Nil())),
		)
	}

	return stmts, nil
}

// decodeArg renders the decode of the i-th incoming value into a local
// named after the argument. A map-translated argument decodes into its
// wire pair list first, then converts with duplicate-key rejection.
func decodeArg(i int, arg lattice.Arg) ([]jen.Code, error) {
	if arg.Map != nil {
		pairs, err := pairType(arg.Map, []string{arg.Name})
		if err != nil {
			return nil, err
		}
		pairName := arg.GoName + "Pairs"
		return []jen.Code{
			jen.Var().Id(pairName).Add(pairs),
			decodeBlock(i, arg.Name, pairName),
			jen.List(jen.Id(arg.GoName), jen.Err()).Op(":=").Qual(sdkPath, "PairsToMap").Call(jen.Id(pairName)),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(sdkPath, "DecodeParam").Call(jen.Lit(arg.Name), jen.Err())),
			),
		}, nil
	}

	t, err := argType(arg)
	if err != nil {
		return nil, err
	}
	return []jen.Code{
		jen.Var().Id(arg.GoName).Add(t),
		decodeBlock(i, arg.Name, arg.GoName),
	}, nil
}

func decodeBlock(i int, wireName, target string) jen.Code {
	return jen.Block(
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Qual(sdkPath, "ValueAt").Call(jen.Id("params"), jen.Lit(i), jen.Lit(wireName)),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.If(
			jen.Err().Op(":=").Qual(sdkPath, "DecodeValue").Call(jen.Id("v"), jen.Op("&").Id(target)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Qual(sdkPath, "DecodeParam").Call(jen.Lit(wireName), jen.Err())),
		),
	)
}
