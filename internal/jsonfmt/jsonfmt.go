// Package jsonfmt wraps the JSON format/minify/validate tool.
package jsonfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Result is the output shape of the json tool.
type Result struct {
	Formatted  string `json:"formatted"`
	Original   string `json:"original"`
	Operation  string `json:"operation"` // "format" or "minify"
	Valid      bool   `json:"valid"`
	SizeBefore int    `json:"size_before"`
	SizeAfter  int    `json:"size_after"`
	ParsedData any    `json:"parsed_data"`
}

// Process validates text as JSON and pretty-prints it (two-space
// indent, object keys sorted, no HTML escaping) or minifies it.
func Process(text string, minify bool) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("JSON text cannot be empty")
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !minify {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(parsed); err != nil {
		return nil, fmt.Errorf("re-encoding JSON: %w", err)
	}
	formatted := strings.TrimSuffix(buf.String(), "\n")

	operation := "format"
	if minify {
		operation = "minify"
	}

	return &Result{
		Formatted:  formatted,
		Original:   trimmed,
		Operation:  operation,
		Valid:      true,
		SizeBefore: len(trimmed),
		SizeAfter:  len(formatted),
		ParsedData: parsed,
	}, nil
}
