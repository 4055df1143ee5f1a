package bindgen

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"go.bytecodealliance.org/wit"
)

func strPtr(s string) *string { return &s }

func newInterface(namespace, pkg, name string) *wit.Interface {
	return &wit.Interface{
		Name: strPtr(name),
		Package: &wit.Package{
			Name: wit.Ident{Namespace: namespace, Package: pkg},
		},
	}
}

// kvResolve builds a single-world graph with one exported key-value
// interface: get(key) -> result<string, string> and a void del(key).
func kvResolve() *wit.Resolve {
	iface := newInterface("wasmcloud", "keyvalue", "key-value")
	iface.Functions.Set("get", &wit.Function{
		Name:   "get",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "key", Type: wit.String{}}},
		Results: []wit.Param{{Type: &wit.TypeDef{Kind: &wit.Result{OK: wit.String{}, Err: wit.String{}}}}},
	})
	iface.Functions.Set("del", &wit.Function{
		Name:   "del",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "key", Type: wit.String{}}},
	})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:keyvalue/key-value", &wit.InterfaceRef{Interface: iface})
	return &wit.Resolve{Worlds: []*wit.World{world}}
}

func kvConfig() *Config {
	return &Config{ImplStruct: "KVProvider", Contract: "wasmcloud:keyvalue", Package: "bindings"}
}

func TestGenerate_Dispatch(t *testing.T) {
	out, err := Generate(kvResolve(), kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	wantFragments := []string{
		"// Code generated by lattice-bindgen. DO NOT EDIT.",
		"package bindings",
		"type WasmcloudKeyvalueKeyValue interface {",
		"func WasmcloudKeyvalueKeyValueContractID() string",
		`return "wasmcloud:keyvalue"`,
		"var _ WasmcloudKeyvalueKeyValue = (*KVProvider)(nil)",
		"func (p *KVProvider) Dispatch(ctx sdk.Context, operation string, params []sdk.Value) ([]byte, error)",
		`case "wasmcloud:keyvalue/key-value.get":`,
		`case "wasmcloud:keyvalue/key-value.del":`,
		"sdk.MalformedOperation(operation)",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(src, frag) {
			t.Errorf("output missing %q", frag)
		}
	}
}

func TestGenerate_DispatchArmShapes(t *testing.T) {
	out, err := Generate(kvResolve(), kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	// get returns result<string, string>: the handler error feeds the
	// wire result frame.
	if !strings.Contains(src, `sdk.EncodeResult("wasmcloud:keyvalue/key-value.get", out, callErr)`) {
		t.Error("get arm should encode a result frame")
	}
	// del is void: a handler error has no wire channel and is local.
	if !strings.Contains(src, `sdk.HandlerFailed("wasmcloud:keyvalue/key-value.del", callErr)`) {
		t.Error("del arm should wrap handler failures")
	}
	// Arguments are consumed front-first by declaration index.
	if !strings.Contains(src, `sdk.ValueAt(params, 0, "key")`) {
		t.Error("arm should read the first value for the first argument")
	}
}

func TestGenerate_RecordFlattening(t *testing.T) {
	iface := newInterface("wasmcloud", "keyvalue", "key-value")
	doc := &wit.TypeDef{Name: strPtr("set-request"), Kind: &wit.Record{Fields: []wit.Field{
		{Name: "key", Type: wit.String{}},
		{Name: "value", Type: wit.String{}},
		{Name: "expires", Type: wit.U32{}},
	}}}
	iface.TypeDefs.Set("set-request", doc)
	iface.Functions.Set("set", &wit.Function{
		Name:   "set",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "request", Type: doc}},
	})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:keyvalue/key-value", &wit.InterfaceRef{Interface: iface})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	out, err := Generate(res, kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	if !strings.Contains(src, "Set(ctx sdk.Context, key string, value string, expires uint32) error") {
		t.Error("handler signature should carry the flattened record fields")
	}
	if !strings.Contains(src, `sdk.ValueAt(params, 2, "expires")`) {
		t.Error("third flattened field should decode from index 2")
	}
}

func TestGenerate_Subjects(t *testing.T) {
	out, err := Generate(kvResolve(), kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	wantFragments := []string{
		"func (p *KVProvider) IncomingInvocationSubjects(latticeName, componentID, version string) (map[string]sdk.SubjectEntry, error)",
		`sdk.Subject(latticeName, componentID, version, "wasmcloud:keyvalue/key-value.get")`,
		"sdk.ParseDynamicFunction",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(src, frag) {
			t.Errorf("output missing %q", frag)
		}
	}

	// Struct literal fields are column-aligned by the formatter.
	wantFields := []string{
		`WorldKey:\s+"KeyValue"`,
		`Function:\s+"get"`,
	}
	for _, field := range wantFields {
		if !regexp.MustCompile(field).MatchString(src) {
			t.Errorf("output missing entry field %s", field)
		}
	}
}

func TestGenerate_ImportStubs(t *testing.T) {
	iface := newInterface("wasmcloud", "messaging", "consumer")
	iface.Functions.Set("publish", &wit.Function{
		Name: "publish",
		Kind: &wit.Freestanding{},
		Params: []wit.Param{
			{Name: "subject", Type: wit.String{}},
			{Name: "body", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
		},
	})

	world := &wit.World{Name: "provider"}
	world.Imports.Set("wasmcloud:messaging/consumer", &wit.InterfaceRef{Interface: iface})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	out, err := Generate(res, kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	wantFragments := []string{
		"type InvocationHandler struct {",
		"func NewInvocationHandler(client sdk.Client) *InvocationHandler",
		"func (h *InvocationHandler) Publish(ctx context.Context, subject string, body []uint8) (err error)",
		`const operation = "wasmcloud:messaging/consumer.publish"`,
		"h.client.Invoke(ctx, operation, payload)",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(src, frag) {
			t.Errorf("output missing %q", frag)
		}
	}
}

func TestGenerate_ExcludesHostIntrinsics(t *testing.T) {
	bus := newInterface("wasmcloud", "bus", "lattice")
	bus.Functions.Set("set-link-name", &wit.Function{
		Name:   "set-link-name",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "name", Type: wit.String{}}},
	})
	streams := newInterface("wasi", "io", "streams")
	streams.Functions.Set("read", &wit.Function{
		Name:   "read",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "len", Type: wit.U64{}}},
	})
	messaging := newInterface("wasmcloud", "messaging", "consumer")
	messaging.Functions.Set("publish", &wit.Function{
		Name:   "publish",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "subject", Type: wit.String{}}},
	})

	world := &wit.World{Name: "provider"}
	world.Imports.Set("wasmcloud:bus/lattice", &wit.InterfaceRef{Interface: bus})
	world.Imports.Set("wasi:io/streams", &wit.InterfaceRef{Interface: streams})
	world.Imports.Set("wasmcloud:messaging/consumer", &wit.InterfaceRef{Interface: messaging})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	out, err := Generate(res, kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	if strings.Contains(src, "wasmcloud:bus") {
		t.Error("wasmcloud:bus must not receive stubs")
	}
	if strings.Contains(src, "SetLinkName") {
		t.Error("bus functions must not receive stubs")
	}
	if strings.Contains(src, "wasi:io") {
		t.Error("wasi:io must not receive stubs")
	}
	if !strings.Contains(src, "func (h *InvocationHandler) Publish(") {
		t.Error("non-intrinsic import should still receive a stub")
	}
}

func TestGenerate_WitifiedMaps(t *testing.T) {
	iface := newInterface("wasmcloud", "keyvalue", "key-value")
	pairList := &wit.TypeDef{Kind: &wit.List{Type: &wit.TypeDef{
		Kind: &wit.Tuple{Types: []wit.Type{wit.String{}, wit.String{}}},
	}}}
	iface.Functions.Set("set-many", &wit.Function{
		Name:   "set-many",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "entries", Type: pairList}},
	})

	outbound := newInterface("wasmcloud", "messaging", "consumer")
	outbound.Functions.Set("send-headers", &wit.Function{
		Name:   "send-headers",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "headers", Type: pairList}},
	})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:keyvalue/key-value", &wit.InterfaceRef{Interface: iface})
	world.Imports.Set("wasmcloud:messaging/consumer", &wit.InterfaceRef{Interface: outbound})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	cfg := kvConfig()
	cfg.ReplaceWitifiedMaps = true

	out, err := Generate(res, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	if !strings.Contains(src, "SetMany(ctx sdk.Context, entries map[string]string) error") {
		t.Error("handler signature should present the pair list as a native map")
	}
	if !strings.Contains(src, "var entriesPairs []sdk.Pair[string, string]") {
		t.Error("wire-side declaration should instantiate the pair type")
	}
	if !strings.Contains(src, "sdk.PairsToMap(entriesPairs)") {
		t.Error("dispatch arm should convert pairs with duplicate-key rejection")
	}
	if !strings.Contains(src, "sdk.MapToPairs(headers)") {
		t.Error("import stub should re-encode the map as sorted pairs")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(kvResolve(), kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(kvResolve(), kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs over the same inputs should emit identical bytes")
	}
}

func TestGenerate_NamespaceOverride(t *testing.T) {
	cfg := kvConfig()
	cfg.WitNamespace = strPtr("custom")

	out, err := Generate(kvResolve(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	if !strings.Contains(src, `"custom:keyvalue/key-value.get"`) {
		t.Error("operation names should use the overridden namespace")
	}
	if strings.Contains(src, `"wasmcloud:keyvalue/key-value.get"`) {
		t.Error("original namespace should not survive the override")
	}
}

func TestGenerate_DeniedInterfaceDropped(t *testing.T) {
	cfg := kvConfig()
	cfg.DeniedInterfaces = []string{"key-value"}

	out, err := Generate(kvResolve(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.Contains(string(out), "key-value.get") {
		t.Error("denied interface should contribute no operations")
	}
}

func TestGenerate_ErrorNoPartialOutput(t *testing.T) {
	iface := newInterface("wasmcloud", "blobstore", "blob")
	iface.Functions.Set("open", &wit.Function{
		Name: "open",
		Kind: &wit.Freestanding{},
		Params: []wit.Param{
			{Name: "handle", Type: &wit.TypeDef{Kind: &wit.Own{}}},
			{Name: "mode", Type: wit.U8{}},
		},
	})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:blobstore/blob", &wit.InterfaceRef{Interface: iface})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	out, err := Generate(res, kvConfig())
	if err == nil {
		t.Fatal("expected error for resource handle in signature")
	}
	if out != nil {
		t.Error("failed run must not return partial output")
	}
}

func TestGenerate_DuplicateOperation(t *testing.T) {
	iface := newInterface("wasmcloud", "keyvalue", "key-value")
	// Two declarations that normalize to the same kebab operation name.
	iface.Functions.Set("get-thing", &wit.Function{
		Name:   "get-thing",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "key", Type: wit.String{}}},
	})
	iface.Functions.Set("getThing", &wit.Function{
		Name:   "getThing",
		Kind:   &wit.Freestanding{},
		Params: []wit.Param{{Name: "key", Type: wit.String{}}},
	})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:keyvalue/key-value", &wit.InterfaceRef{Interface: iface})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	if _, err := Generate(res, kvConfig()); err == nil {
		t.Fatal("expected duplicate operation error")
	}
}

func TestGenerate_AliasDeclarations(t *testing.T) {
	iface := newInterface("wasmcloud", "keyvalue", "key-value")
	iface.TypeDefs.Set("revision", &wit.TypeDef{Name: strPtr("revision"), Kind: wit.U64{}})
	record := &wit.TypeDef{Name: strPtr("document"), Kind: &wit.Record{}}
	iface.TypeDefs.Set("document", record)
	// An alias shadowed by a record declaration would duplicate it.
	iface.TypeDefs.Set("doc", &wit.TypeDef{Name: strPtr("document"), Kind: record})

	world := &wit.World{Name: "provider"}
	world.Exports.Set("wasmcloud:keyvalue/key-value", &wit.InterfaceRef{Interface: iface})
	res := &wit.Resolve{Worlds: []*wit.World{world}}

	out, err := Generate(res, kvConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := string(out)

	if !strings.Contains(src, "type Revision = uint64") {
		t.Error("surviving plain alias should be re-declared")
	}
	if strings.Contains(src, "type Document") {
		t.Error("record declarations belong to the base generator")
	}
}

func TestGenerate_NilConfig(t *testing.T) {
	if _, err := Generate(kvResolve(), nil); err == nil {
		t.Error("expected error for nil configuration")
	}
}
