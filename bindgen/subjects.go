package bindgen

import (
	"encoding/json"
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/wippyai/lattice-bindgen/errors"
	"github.com/wippyai/lattice-bindgen/lattice"
)

// writeSubjects emits the inbound subject table method. Every
// non-excluded exported function contributes one entry; its call
// descriptor is embedded as a JSON literal and parsed at process start.
func writeSubjects(f *jen.File, cfg *Config, exports []boundInterface) error {
	var stmts []jen.Code
	entries := 0

	dict := jen.Dict{}
	for _, b := range exports {
		worldKey := lattice.ToUpperCamel(b.iface.Name)
		for _, m := range b.methods {
			desc, err := descriptorLiteral(m)
			if err != nil {
				return err
			}

			descName := "desc" + strconv.Itoa(entries)
			stmts = append(stmts,
				jen.List(jen.Id(descName), jen.Id("err"+strconv.Itoa(entries))).Op(":=").
					Qual(sdkPath, "ParseDynamicFunction").Call(jen.Index().Byte().Parens(jen.Lit(desc))),
				jen.If(jen.Id("err"+strconv.Itoa(entries)).Op("!=").Nil()).Block(
					jen.Return(jen.Nil(), jen.Id("err"+strconv.Itoa(entries))),
				),
			)

			key := jen.Qual(sdkPath, "Subject").Call(
				jen.Id("latticeName"), jen.Id("componentID"), jen.Id("version"), jen.Lit(m.Operation),
			)
			dict[key] = jen.Qual(sdkPath, "SubjectEntry").Values(jen.Dict{
				jen.Id("WorldKey"):   jen.Lit(worldKey),
				jen.Id("Function"):   jen.Lit(m.Source.Name),
				jen.Id("Descriptor"): jen.Id(descName),
			})
			entries++
		}
	}

	stmts = append(stmts, jen.Return(
		jen.Map(jen.String()).Qual(sdkPath, "SubjectEntry").Values(dict),
		jen.Nil(),
	))

	f.Comment("IncomingInvocationSubjects maps every wire subject this component serves to its call descriptor.")
	f.Func().
		Params(jen.Id("p").Op("*").Id(cfg.ImplStruct)).
		Id("IncomingInvocationSubjects").
		Params(jen.List(jen.Id("latticeName"), jen.Id("componentID"), jen.Id("version")).String()).
		Params(jen.Map(jen.String()).Qual(sdkPath, "SubjectEntry"), jen.Error()).
		Block(stmts...)
	return nil
}

// descriptorLiteral serializes one function's call descriptor to the JSON
// form embedded in generated output.
func descriptorLiteral(m *lattice.Method) (string, error) {
	desc, err := lattice.Descriptor(m.Source)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(desc)
	if err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindUnexpected, err, "serialize call descriptor")
	}
	return string(data), nil
}
