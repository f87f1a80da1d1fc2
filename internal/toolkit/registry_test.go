package toolkit

import (
	"encoding/json"
	"errors"
	"testing"
)

func stubTool(name, category string) Tool {
	return funcTool{
		def: Definition{
			Name:        name,
			Description: name + " stub",
			Category:    category,
			Version:     "1.0.0",
			InputSchema: objectSchema(map[string]any{}),
		},
		run: func(args json.RawMessage) (any, error) {
			return map[string]string{"tool": name}, nil
		},
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubTool("alpha", "misc")); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := r.Get("alpha"); err != nil {
		t.Errorf("Get(alpha) error: %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubTool("alpha", "misc")); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if err := r.Register(stubTool("alpha", "misc")); err == nil {
		t.Error("duplicate Register() succeeded, want error")
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubTool("", "misc")); err == nil {
		t.Error("Register() with empty name succeeded, want error")
	}
}

func TestGet_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("missing")
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Get(missing) error = %v, want ErrUnknownTool", err)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubTool("alpha", "misc")); err != nil {
		t.Fatal(err)
	}
	result, err := r.Execute("alpha", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	m, ok := result.(map[string]string)
	if !ok || m["tool"] != "alpha" {
		t.Errorf("Execute() = %v, want tool=alpha", result)
	}
}

func TestExecute_Unknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Execute("missing", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Execute(missing) error = %v, want ErrUnknownTool", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(stubTool(name, "misc")); err != nil {
			t.Fatal(err)
		}
	}
	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCategories(t *testing.T) {
	r := NewRegistry()
	for name, category := range map[string]string{
		"a": "text", "b": "time", "c": "text",
	} {
		if err := r.Register(stubTool(name, category)); err != nil {
			t.Fatal(err)
		}
	}
	cats := r.Categories()
	if len(cats) != 2 || cats[0] != "text" || cats[1] != "time" {
		t.Errorf("Categories() = %v, want [text time]", cats)
	}
	inText := r.NamesByCategory("text")
	if len(inText) != 2 || inText[0] != "a" || inText[1] != "c" {
		t.Errorf("NamesByCategory(text) = %v, want [a c]", inText)
	}
}

func TestInfo(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubTool("alpha", "misc")); err != nil {
		t.Fatal(err)
	}
	info, err := r.Info("alpha")
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if info["name"] != "alpha" {
		t.Errorf("info name = %v, want alpha", info["name"])
	}
	cfg, ok := info["config"].(map[string]any)
	if !ok {
		t.Fatalf("info config missing: %v", info)
	}
	if cfg["category"] != "misc" || cfg["version"] != "1.0.0" {
		t.Errorf("info config = %v", cfg)
	}
	if _, ok := info["input_schema"]; !ok {
		t.Error("info input_schema missing")
	}
}

func TestInfo_Unknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Info("missing"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Info(missing) error = %v, want ErrUnknownTool", err)
	}
}
