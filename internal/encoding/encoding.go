// Package encoding wraps the base64 and URL percent-encoding tools.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Base64Result is the output shape of the base64 tool.
type Base64Result struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Operation string `json:"operation"`
}

// Base64 encodes or decodes standard base64. The empty operation
// defaults to "encode".
func Base64(text, operation string) (*Base64Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text cannot be empty")
	}
	switch operation {
	case "encode", "":
		return &Base64Result{
			Input:     text,
			Output:    base64.StdEncoding.EncodeToString([]byte(text)),
			Operation: "encode",
		}, nil
	case "decode":
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("base64 decode failed: %w", err)
		}
		return &Base64Result{Input: text, Output: string(raw), Operation: "decode"}, nil
	}
	return nil, fmt.Errorf("operation must be 'encode' or 'decode' (got %q)", operation)
}

// URLResult is the output shape of the url tool.
type URLResult struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	Operation  string `json:"operation"`
	IsValidURL bool   `json:"is_valid_url"`
}

// URL percent-encodes or -decodes text. Decoding requires at least one
// '%' in the input; IsValidURL reports whether the plain-text side of
// the operation parses as an absolute URL.
func URL(text, operation string) (*URLResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text cannot be empty")
	}
	switch operation {
	case "encode", "":
		out := (&url.URL{Path: text}).EscapedPath()
		return &URLResult{
			Input:      text,
			Output:     out,
			Operation:  "encode",
			IsValidURL: isValidURL(text),
		}, nil
	case "decode":
		if !strings.Contains(text, "%") {
			return nil, errors.New("text doesn't appear to be URL encoded (no % characters found)")
		}
		out, err := url.PathUnescape(text)
		if err != nil {
			return nil, fmt.Errorf("url decode failed: %w", err)
		}
		return &URLResult{
			Input:      text,
			Output:     out,
			Operation:  "decode",
			IsValidURL: isValidURL(out),
		}, nil
	}
	return nil, fmt.Errorf("operation must be 'encode' or 'decode' (got %q)", operation)
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
