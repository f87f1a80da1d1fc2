package toolkit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/devtools-mcp/internal/colorconv"
	"github.com/ironsheep/devtools-mcp/internal/config"
	"github.com/ironsheep/devtools-mcp/internal/encoding"
	"github.com/ironsheep/devtools-mcp/internal/escape"
	"github.com/ironsheep/devtools-mcp/internal/hashing"
	"github.com/ironsheep/devtools-mcp/internal/identifier"
)

func TestDefaultRegistry_FullCatalog(t *testing.T) {
	r := DefaultRegistry(nil)
	want := []string{"base64", "color", "epoch", "escape", "hash", "json", "jwt", "url", "uuid"}
	names := r.Names()
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDefaultRegistry_DisabledTools(t *testing.T) {
	cfg := &config.Config{DisabledTools: []string{"jwt", "uuid"}}
	r := DefaultRegistry(cfg)
	if len(r.Names()) != 7 {
		t.Errorf("Names() = %v, want 7 tools", r.Names())
	}
	for _, name := range []string{"jwt", "uuid"} {
		if _, err := r.Get(name); err == nil {
			t.Errorf("tool %q registered despite being disabled", name)
		}
	}
}

func TestDefinitions_HaveSchemas(t *testing.T) {
	for _, def := range DefaultRegistry(nil).Definitions() {
		if def.Description == "" {
			t.Errorf("tool %q has no description", def.Name)
		}
		if def.Category == "" {
			t.Errorf("tool %q has no category", def.Name)
		}
		if def.InputSchema["type"] != "object" {
			t.Errorf("tool %q schema type = %v, want object", def.Name, def.InputSchema["type"])
		}
		if _, ok := def.InputSchema["properties"]; !ok {
			t.Errorf("tool %q schema has no properties", def.Name)
		}
	}
}

func TestEscapeTool_Defaults(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("escape", json.RawMessage(`{"text":"a < b & c"}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*escape.Result)
	if res.OutputText != "a &lt; b &amp; c" {
		t.Errorf("OutputText = %q", res.OutputText)
	}
	if res.Operation != "escape" || res.Format != "html" {
		t.Errorf("defaults not applied: operation=%q format=%q", res.Operation, res.Format)
	}
}

func TestEscapeTool_MalformedInputPassesThrough(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("escape", json.RawMessage(
		`{"text":"broken \\u12","operation":"unescape","format":"javascript"}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*escape.Result)
	if res.OutputText != res.InputText {
		t.Errorf("malformed escape: output %q, want input %q unchanged", res.OutputText, res.InputText)
	}
}

func TestEscapeTool_InvalidFormat(t *testing.T) {
	r := DefaultRegistry(nil)
	if _, err := r.Execute("escape", json.RawMessage(`{"text":"x","format":"latin1"}`)); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestColorTool(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("color", json.RawMessage(`{"color":"rgb(255, 0, 0)"}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*colorconv.Result)
	if res.Hex != "#ff0000" {
		t.Errorf("Hex = %q, want #ff0000", res.Hex)
	}
}

func TestBase64Tool_DefaultOperation(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("base64", json.RawMessage(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*encoding.Base64Result)
	if res.Output != "aGVsbG8=" || res.Operation != "encode" {
		t.Errorf("got %+v", res)
	}
}

func TestHashTool_DefaultAlgorithm(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("hash", json.RawMessage(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*hashing.Result)
	if res.Algorithm != "sha256" {
		t.Errorf("Algorithm = %q, want sha256", res.Algorithm)
	}
	if len(res.Hash) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(res.Hash))
	}
}

func TestUUIDTool_EmptyArguments(t *testing.T) {
	r := DefaultRegistry(nil)
	result, err := r.Execute("uuid", nil)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	res := result.(*identifier.Result)
	if res.Version != 4 || res.Count != 1 || len(res.UUIDs) != 1 {
		t.Errorf("got %+v, want one v4 UUID", res)
	}
}

func TestTool_MalformedArguments(t *testing.T) {
	r := DefaultRegistry(nil)
	_, err := r.Execute("base64", json.RawMessage(`{"text":42}`))
	if err == nil || !strings.Contains(err.Error(), "invalid arguments") {
		t.Errorf("Execute() error = %v, want invalid arguments", err)
	}
}
