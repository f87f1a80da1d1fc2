package toolkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTool reports a lookup for a name no tool was registered
// under.
var ErrUnknownTool = errors.New("unknown tool")

// Definition describes a tool: identity, discovery metadata and the
// JSON schema of its argument object.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Version     string         `json:"version"`
	Keywords    []string       `json:"keywords"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Tool is the uniform contract every devtools plugin implements.
// Execute receives the raw JSON argument object and returns a
// JSON-serializable result.
type Tool interface {
	Definition() Definition
	Execute(args json.RawMessage) (any, error)
}

// Registry holds the tool catalog. It is populated once at startup and
// read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are rejected.
func (r *Registry) Register(t Tool) error {
	name := t.Definition().Name
	if name == "" {
		return errors.New("tool has no name")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q is already registered", name)
	}
	r.tools[name] = t
	return nil
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t, nil
}

// Execute runs the named tool with the given raw arguments.
func (r *Registry) Execute(name string, args json.RawMessage) (any, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return t.Execute(args)
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all tool definitions, sorted by name.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.tools))
	for _, name := range r.Names() {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Categories returns the sorted set of distinct tool categories.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	for _, t := range r.tools {
		seen[t.Definition().Category] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// NamesByCategory returns the sorted names of tools in one category.
func (r *Registry) NamesByCategory(category string) []string {
	var names []string
	for _, name := range r.Names() {
		if r.tools[name].Definition().Category == category {
			names = append(names, name)
		}
	}
	return names
}

// Info returns the discovery payload for one tool: its definition plus
// the input schema, matching the CLI "info" command output.
func (r *Registry) Info(name string) (map[string]any, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	def := t.Definition()
	return map[string]any{
		"name": def.Name,
		"config": map[string]any{
			"name":        def.Name,
			"description": def.Description,
			"category":    def.Category,
			"version":     def.Version,
			"keywords":    def.Keywords,
		},
		"input_schema": def.InputSchema,
	}, nil
}
