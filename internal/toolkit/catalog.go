package toolkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/devtools-mcp/internal/colorconv"
	"github.com/ironsheep/devtools-mcp/internal/config"
	"github.com/ironsheep/devtools-mcp/internal/encoding"
	"github.com/ironsheep/devtools-mcp/internal/epoch"
	"github.com/ironsheep/devtools-mcp/internal/escape"
	"github.com/ironsheep/devtools-mcp/internal/hashing"
	"github.com/ironsheep/devtools-mcp/internal/identifier"
	"github.com/ironsheep/devtools-mcp/internal/jsonfmt"
	"github.com/ironsheep/devtools-mcp/internal/token"
)

// funcTool adapts a definition plus an execute closure to the Tool
// interface.
type funcTool struct {
	def Definition
	run func(args json.RawMessage) (any, error)
}

func (t funcTool) Definition() Definition { return t.def }

func (t funcTool) Execute(args json.RawMessage) (any, error) { return t.run(args) }

// DefaultRegistry builds the registry with the full tool catalog,
// honoring cfg.DisabledTools. A nil cfg enables everything.
func DefaultRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()
	for _, t := range []Tool{
		escapeTool(),
		colorTool(),
		base64Tool(),
		urlTool(),
		hashTool(),
		jwtTool(),
		jsonTool(),
		uuidTool(),
		epochTool(),
	} {
		if cfg.Disabled(t.Definition().Name) {
			continue
		}
		// Names are distinct by construction.
		_ = r.Register(t)
	}
	return r
}

// unmarshalArgs decodes the raw argument object, treating an empty
// payload as an empty object.
func unmarshalArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// objectSchema builds an MCP-style JSON schema for an argument object.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// === Escape / Unescape ===

type escapeArgs struct {
	Text      string `json:"text"`
	Operation string `json:"operation"`
	Format    string `json:"format"`
}

func escapeTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "escape",
			Description: "Escape or unescape text for HTML, JSON, XML or JavaScript",
			Category:    "escape/unescape",
			Version:     "1.0.0",
			Keywords:    []string{"escape", "unescape", "html", "json", "xml", "javascript"},
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text to escape or unescape",
				},
				"operation": map[string]any{
					"type":        "string",
					"enum":        []string{"escape", "unescape"},
					"description": "Direction of the transform (default 'escape')",
					"default":     "escape",
				},
				"format": map[string]any{
					"type":        "string",
					"enum":        []string{"html", "json", "xml", "javascript"},
					"description": "Escape grammar to apply (default 'html')",
					"default":     "html",
				},
			}, "text"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a escapeArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			if a.Operation == "" {
				a.Operation = "escape"
			}
			if a.Format == "" {
				a.Format = "html"
			}
			op, err := escape.ParseOperation(a.Operation)
			if err != nil {
				return nil, err
			}
			format, err := escape.ParseFormat(a.Format)
			if err != nil {
				return nil, err
			}
			out, err := escape.Transform(a.Text, format, op)
			if errors.Is(err, escape.ErrMalformedEscape) {
				// Best effort: hand back the input unchanged instead of
				// failing on malformed escape sequences.
				out = a.Text
			} else if err != nil {
				return nil, err
			}
			return &escape.Result{
				InputText:  a.Text,
				OutputText: out,
				Operation:  op.String(),
				Format:     format.String(),
			}, nil
		},
	}
}

// === Color ===

type colorArgs struct {
	Color string `json:"color"`
}

func colorTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "color",
			Description: "Convert between color formats (HEX, RGB, HSL)",
			Category:    "design",
			Version:     "1.0.0",
			Keywords:    []string{"color", "hex", "rgb", "hsl", "convert", "css", "design"},
			InputSchema: objectSchema(map[string]any{
				"color": map[string]any{
					"type":        "string",
					"description": "Color value in hex (#ff0000, #f0a), rgb(r,g,b) or hsl(h,s%,l%) notation",
				},
			}, "color"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a colorArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return colorconv.Convert(a.Color)
		},
	}
}

// === Base64 ===

type textOperationArgs struct {
	Text      string `json:"text"`
	Operation string `json:"operation"`
}

func base64Tool() Tool {
	return funcTool{
		def: Definition{
			Name:        "base64",
			Description: "Encode or decode Base64 strings",
			Category:    "encoding",
			Version:     "1.0.0",
			Keywords:    []string{"base64", "encode", "decode", "encoding"},
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text to encode or decode",
				},
				"operation": map[string]any{
					"type":    "string",
					"enum":    []string{"encode", "decode"},
					"default": "encode",
				},
			}, "text"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a textOperationArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return encoding.Base64(a.Text, a.Operation)
		},
	}
}

// === URL ===

func urlTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "url",
			Description: "Encode or decode URL strings with validation",
			Category:    "encoding",
			Version:     "1.0.0",
			Keywords:    []string{"url", "encode", "decode", "percent", "encoding", "uri"},
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text or URL to encode or decode",
				},
				"operation": map[string]any{
					"type":    "string",
					"enum":    []string{"encode", "decode"},
					"default": "encode",
				},
			}, "text"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a textOperationArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return encoding.URL(a.Text, a.Operation)
		},
	}
}

// === Hash ===

type hashArgs struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm"`
}

func hashTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "hash",
			Description: "Generate cryptographic hashes using various algorithms",
			Category:    "security",
			Version:     "1.0.0",
			Keywords:    []string{"hash", "md5", "sha1", "sha256", "sha512", "crypto", "checksum", "digest"},
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text to hash",
				},
				"algorithm": map[string]any{
					"type":    "string",
					"enum":    hashing.Algorithms(),
					"default": "sha256",
				},
			}, "text"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a hashArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return hashing.Sum(a.Text, a.Algorithm)
		},
	}
}

// === JWT ===

type jwtArgs struct {
	Token string `json:"token"`
}

func jwtTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "jwt",
			Description: "Decode and analyze JSON Web Tokens (JWT)",
			Category:    "security",
			Version:     "1.0.0",
			Keywords:    []string{"jwt", "json", "web", "token", "decode", "auth", "security"},
			InputSchema: objectSchema(map[string]any{
				"token": map[string]any{
					"type":        "string",
					"description": "JWT token to decode (signature is not verified)",
				},
			}, "token"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a jwtArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return token.Decode(a.Token)
		},
	}
}

// === JSON ===

type jsonArgs struct {
	Text   string `json:"text"`
	Minify bool   `json:"minify"`
}

func jsonTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "json",
			Description: "Format, validate, and minify JSON strings",
			Category:    "text",
			Version:     "1.0.0",
			Keywords:    []string{"json", "format", "minify", "validate", "pretty", "parse"},
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "JSON text to format or minify",
				},
				"minify": map[string]any{
					"type":        "boolean",
					"description": "Minify instead of pretty-print",
					"default":     false,
				},
			}, "text"),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a jsonArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return jsonfmt.Process(a.Text, a.Minify)
		},
	}
}

// === UUID ===

type uuidArgs struct {
	Version int `json:"version"`
	Count   int `json:"count"`
}

func uuidTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "uuid",
			Description: "Generate UUID v1 or v4 unique identifiers",
			Category:    "text",
			Version:     "1.0.0",
			Keywords:    []string{"uuid", "guid", "identifier", "unique", "random", "generate"},
			InputSchema: objectSchema(map[string]any{
				"version": map[string]any{
					"type":        "integer",
					"enum":        []int{1, 4},
					"description": "UUID version (default 4)",
					"default":     4,
				},
				"count": map[string]any{
					"type":        "integer",
					"description": fmt.Sprintf("Number of UUIDs to generate, 1-%d (default 1)", identifier.MaxCount),
					"default":     1,
				},
			}),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a uuidArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return identifier.Generate(a.Version, a.Count)
		},
	}
}

// === Epoch ===

type epochArgs struct {
	Timestamp string `json:"timestamp"`
}

func epochTool() Tool {
	return funcTool{
		def: Definition{
			Name:        "epoch",
			Description: "Convert epoch timestamps to human-readable formats",
			Category:    "time",
			Version:     "1.0.0",
			Keywords:    []string{"epoch", "timestamp", "unix", "time", "convert", "date"},
			InputSchema: objectSchema(map[string]any{
				"timestamp": map[string]any{
					"type":        "string",
					"description": "Epoch timestamp in seconds or milliseconds (empty for current time)",
				},
			}),
		},
		run: func(raw json.RawMessage) (any, error) {
			var a epochArgs
			if err := unmarshalArgs(raw, &a); err != nil {
				return nil, err
			}
			return epoch.Convert(strings.TrimSpace(a.Timestamp))
		},
	}
}
