package bindgen

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/wippyai/lattice-bindgen/lattice"
)

// writeInvocationHandler emits the outbound call surface: a handle
// wrapping the transport client with one typed stub per imported
// function.
func writeInvocationHandler(f *jen.File, imports []boundInterface) error {
	f.Comment("InvocationHandler issues typed calls to linked components over the lattice.")
	f.Type().Id("InvocationHandler").Struct(
		jen.Id("client").Qual(sdkPath, "Client"),
	)

	f.Func().Id("NewInvocationHandler").Params(jen.Id("client").Qual(sdkPath, "Client")).Op("*").Id("InvocationHandler").Block(
		jen.Return(jen.Op("&").Id("InvocationHandler").Values(jen.Dict{
			jen.Id("client"): jen.Id("client"),
		})),
	)

	for _, b := range imports {
		for _, m := range b.methods {
			if err := writeStub(f, m); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeStub emits one import stub: encode arguments in declaration order,
// invoke, decode the response into the declared return.
func writeStub(f *jen.File, m *lattice.Method) error {
	params := []jen.Code{jen.Id("ctx").Qual("context", "Context")}
	for _, arg := range m.Args {
		t, err := argType(arg)
		if err != nil {
			return err
		}
		params = append(params, jen.Id(arg.GoName).Add(t))
	}

	returns, err := namedReturns(m.Return, m.Operation)
	if err != nil {
		return err
	}

	var stmts []jen.Code
	stmts = append(stmts, jen.Const().Id("operation").Op("=").Lit(m.Operation))

	valueNames := make([]jen.Code, 0, len(m.Args))
	for i, arg := range m.Args {
		name := jen.Id(valueName(i))
		stmts = append(stmts, encodeArg(i, arg)...)
		valueNames = append(valueNames, name)
	}

	stmts = append(stmts,
		jen.List(jen.Id("payload"), jen.Id("joinErr")).Op(":=").
			Qual(sdkPath, "JoinValues").Call(jen.Index().Qual(sdkPath, "Value").Values(valueNames...)),
		jen.If(jen.Id("joinErr").Op("!=").Nil()).Block(
			jen.Err().Op("=").Qual(sdkPath, "InvokeFailed").Call(jen.Id("operation"), jen.Id("joinErr")),
			jen.Return(),
		),
		jen.List(jen.Id("resp"), jen.Id("callErr")).Op(":=").
			Id("h").Dot("client").Dot("Invoke").Call(jen.Id("ctx"), jen.Id("operation"), jen.Id("payload")),
		jen.If(jen.Id("callErr").Op("!=").Nil()).Block(
			jen.Err().Op("=").Qual(sdkPath, "InvokeFailed").Call(jen.Id("operation"), jen.Id("callErr")),
			jen.Return(),
		),
	)
	stmts = append(stmts, decodeResponse(m.Return), jen.Return())

	f.Func().
		Params(jen.Id("h").Op("*").Id("InvocationHandler")).
		Id(m.FuncName).
		Params(params...).
		Params(returns...).
		Block(stmts...)
	return nil
}

// namedReturns renders the stub return list with named results so the
// encode and decode paths can assign and bail uniformly.
func namedReturns(ret *lattice.Return, operation string) ([]jen.Code, error) {
	types, err := returnTypes(ret, []string{operation})
	if err != nil {
		return nil, err
	}
	if len(types) == 1 {
		return []jen.Code{jen.Id("err").Error()}, nil
	}
	return []jen.Code{jen.Id("out").Add(types[0]), jen.Id("err").Error()}, nil
}

func valueName(i int) string {
	return "v" + strconv.Itoa(i)
}

// encodeArg renders the wire encode of one argument. A map-translated
// argument is converted to its sorted pair list at the boundary.
func encodeArg(i int, arg lattice.Arg) []jen.Code {
	src := jen.Id(arg.GoName)
	if arg.Map != nil {
		src = jen.Qual(sdkPath, "MapToPairs").Call(jen.Id(arg.GoName))
	}
	errName := "encErr" + strconv.Itoa(i)
	return []jen.Code{
		jen.List(jen.Id(valueName(i)), jen.Id(errName)).Op(":=").
			Qual(sdkPath, "EncodeValue").Call(src),
		jen.If(jen.Id(errName).Op("!=").Nil()).Block(
			jen.Err().Op("=").Qual(sdkPath, "EncodeParam").Call(jen.Id("operation"), jen.Lit(arg.Name), jen.Id(errName)),
			jen.Return(),
		),
	}
}

func decodeResponse(ret *lattice.Return) jen.Code {
	target := jen.Nil()
	if hasPayload(ret) {
		target = jen.Op("&").Id("out")
	}
	if ret != nil && ret.IsResult {
		return jen.Err().Op("=").Qual(sdkPath, "DecodeResult").Call(jen.Id("operation"), jen.Id("resp"), target)
	}
	return jen.Err().Op("=").Qual(sdkPath, "DecodeReturn").Call(jen.Id("operation"), jen.Id("resp"), target)
}
