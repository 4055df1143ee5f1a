package lattice

import (
	"strings"
	"unicode"
)

// Three case conventions meet here: wire identifiers are kebab-case, Go
// type and method names are UpperCamelCase, Go argument names are
// lowerCamelCase. Input may arrive in any of the three, or in snake_case
// from older toolchains, so every conversion goes through a common word
// split.

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// New word on a lower-to-upper boundary, or at the end of an
			// acronym run (HTTPServer -> HTTP, Server).
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// ToKebabCase converts an identifier in any supported convention to
// kebab-case, the wire form.
func ToKebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// ToUpperCamel converts an identifier to UpperCamelCase.
func ToUpperCamel(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// ToLowerCamel converts an identifier to lowerCamelCase.
func ToLowerCamel(s string) string {
	camel := ToUpperCamel(s)
	if camel == "" {
		return camel
	}
	return strings.ToLower(camel[:1]) + camel[1:]
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// GoArgName converts a wire argument name into a legal Go parameter name.
func GoArgName(s string) string {
	name := ToLowerCamel(s)
	if goKeywords[name] {
		return name + "Arg"
	}
	return name
}

// OperationName builds the canonical wire identifier for one function:
//
//	<namespace>:<package>/<interface>.<function>
//
// Each segment is kebab-cased independently. This string is the
// cross-process contract; caller and callee must agree byte-for-byte.
func OperationName(namespace, pkg, iface, fn string) string {
	return ToKebabCase(namespace) + ":" + ToKebabCase(pkg) + "/" + ToKebabCase(iface) + "." + ToKebabCase(fn)
}

// InterfaceIdent builds the capability-interface identifier for one
// interface path: the three segments upper-camel-cased and concatenated
// with no delimiter (wasmcloud:keyvalue/key-value -> WasmcloudKeyvalueKeyValue).
func InterfaceIdent(namespace, pkg, iface string) string {
	return ToUpperCamel(namespace) + ToUpperCamel(pkg) + ToUpperCamel(iface)
}
