package bindgen

import (
	"bytes"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/lattice-bindgen/catalog"
	"github.com/wippyai/lattice-bindgen/errors"
	"github.com/wippyai/lattice-bindgen/lattice"
)

// Config is the binding configuration for one generation run.
type Config struct {
	// ImplStruct is the provider implementation type the dispatch and
	// subject methods attach to.
	ImplStruct string `yaml:"impl_struct"`

	// Contract is the capability contract identifier, e.g.
	// "wasmcloud:keyvalue".
	Contract string `yaml:"contract"`

	// World selects the world to generate for; may be empty when the
	// graph defines exactly one world.
	World string `yaml:"world"`

	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`

	// WitNamespace and WitPackage override the interface path segments
	// taken from the graph when set.
	WitNamespace *string `yaml:"wit_namespace"`
	WitPackage   *string `yaml:"wit_package"`

	// AllowedInterfaces, when non-empty, restricts exposed interfaces to
	// the listed paths or names. DeniedInterfaces removes entries
	// unconditionally.
	AllowedInterfaces []string `yaml:"allowed_interfaces"`
	DeniedInterfaces  []string `yaml:"denied_interfaces"`

	// ReplaceWitifiedMaps enables native-map translation of
	// list<tuple<k, v>> signature types.
	ReplaceWitifiedMaps bool `yaml:"replace_witified_maps"`

	// IgnoreImport filters packages that are host-intrinsic and never
	// routed over the lattice. Nil selects DefaultIgnoreImport.
	IgnoreImport func(namespace, pkg string) bool `yaml:"-"`
}

// DefaultIgnoreImport excludes the bus-control and generic I/O packages:
// both are served by the host directly and must never receive lattice
// stubs, dispatch arms or subject entries.
func DefaultIgnoreImport(namespace, pkg string) bool {
	switch {
	case namespace == "wasmcloud" && pkg == "bus":
		return true
	case namespace == "wasi" && pkg == "io":
		return true
	default:
		return false
	}
}

// ParseConfig reads a YAML binding configuration. Unknown fields are
// rejected so a typo cannot silently disable a policy.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.InvalidConfig("parse binding configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.ImplStruct == "" {
		return errors.InvalidConfig("impl_struct is required", nil)
	}
	if c.Contract == "" {
		return errors.InvalidConfig("contract is required", nil)
	}
	if c.Package == "" {
		c.Package = "bindings"
	}
	return nil
}

func (c *Config) ignoreImport(namespace, pkg string) bool {
	if c.IgnoreImport != nil {
		return c.IgnoreImport(namespace, pkg)
	}
	return DefaultIgnoreImport(namespace, pkg)
}

// exposed applies the package policy to one interface: the ignore
// predicate first, then the allow-list, then the deny-list. Entries match
// either the full kebab path or the bare interface name.
func (c *Config) exposed(iface *catalog.Interface) bool {
	if c.ignoreImport(lattice.ToKebabCase(iface.Namespace), lattice.ToKebabCase(iface.Package)) {
		return false
	}

	path := kebabPath(iface)
	name := lattice.ToKebabCase(iface.Name)

	if len(c.AllowedInterfaces) > 0 &&
		!slices.Contains(c.AllowedInterfaces, path) &&
		!slices.Contains(c.AllowedInterfaces, name) {
		return false
	}
	if slices.Contains(c.DeniedInterfaces, path) || slices.Contains(c.DeniedInterfaces, name) {
		return false
	}
	return true
}

func kebabPath(iface *catalog.Interface) string {
	return lattice.ToKebabCase(iface.Namespace) + ":" +
		lattice.ToKebabCase(iface.Package) + "/" +
		lattice.ToKebabCase(iface.Name)
}
