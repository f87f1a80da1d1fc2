package escape

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
)

// ErrMalformedEscape reports a backslash escape sequence that cannot be
// decoded: a truncated \xHH or \uHHHH payload, non-hex digits where hex
// digits are required, or a trailing bare backslash. Only the JSON and
// JavaScript unescape paths can produce it; HTML and XML transforms are
// total over any input string.
var ErrMalformedEscape = errors.New("malformed escape sequence")

// Format identifies one of the supported escape grammars.
type Format int

const (
	FormatHTML Format = iota
	FormatJSON
	FormatXML
	FormatJavaScript
)

// String returns the wire name of the format ("html", "json", ...).
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatJavaScript:
		return "javascript"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts a wire name into a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "javascript":
		return FormatJavaScript, nil
	}
	return 0, fmt.Errorf("format must be one of: html, json, xml, javascript (got %q)", s)
}

// Operation selects the direction of a transform.
type Operation int

const (
	Escape Operation = iota
	Unescape
)

// String returns the wire name of the operation.
func (op Operation) String() string {
	if op == Unescape {
		return "unescape"
	}
	return "escape"
}

// ParseOperation converts a wire name into an Operation. Matching is
// case-insensitive.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(s) {
	case "escape":
		return Escape, nil
	case "unescape":
		return Unescape, nil
	}
	return 0, fmt.Errorf("operation must be 'escape' or 'unescape' (got %q)", s)
}

// Result is the output shape of the escape tool.
type Result struct {
	InputText  string `json:"input_text"`
	OutputText string `json:"output_text"`
	Operation  string `json:"operation"`
	Format     string `json:"format"`
}

// Transform escapes or unescapes text according to the rules of the
// given format.
//
// For every format, Transform(Transform(s, f, Escape), f, Unescape)
// reproduces s for any string of Unicode scalar values.
//
// HTML and XML transforms never fail. JSON and JavaScript unescaping
// return ErrMalformedEscape (wrapped, with the partially decoded text)
// when the input contains truncated or invalid backslash sequences;
// callers presenting best-effort semantics should fall back to the
// original input in that case.
func Transform(text string, format Format, op Operation) (string, error) {
	switch format {
	case FormatHTML:
		if op == Escape {
			return html.EscapeString(text), nil
		}
		return html.UnescapeString(text), nil

	case FormatXML:
		if op == Escape {
			return xmlEscaper.Replace(text), nil
		}
		return xmlUnescaper.Replace(text), nil

	case FormatJSON:
		if op == Escape {
			return jsonEscape(text), nil
		}
		return jsonUnescape(text), nil

	case FormatJavaScript:
		if op == Escape {
			return jsEscape(text), nil
		}
		return jsUnescape(text)
	}
	return "", fmt.Errorf("unsupported format %v", format)
}

// XML uses exactly the five predefined entities, both directions.
// No extended named-entity handling on unescape.
var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"'", "&apos;",
		`"`, "&quot;",
	)
	xmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&apos;", "'",
		"&quot;", `"`,
	)
)

// jsonEscape produces the inner content of a JSON string literal:
// quotes, backslashes and control characters below 0x20 are escaped,
// the surrounding quote characters are stripped, and HTML-significant
// characters are left alone.
func jsonEscape(s string) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

// jsonUnescape parses a bare (unquoted) escaped string body as a JSON
// string literal. Bodies that are not strictly valid get a best-effort
// decode of the common escapes instead; the function is total.
func jsonUnescape(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err == nil {
		return out
	}
	return looseUnescape(s)
}

// looseUnescape decodes the common two-character escapes and \uHHHH
// sequences, leaving anything unrecognized untouched. Surrogate halves
// are not recombined on this path.
func looseUnescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '"', '\'', '\\', '/':
			b.WriteByte(s[i+1])
		case 'u':
			if v, err := hexField(s, i+2, 4); err == nil {
				b.WriteRune(rune(v))
				i += 6
				continue
			}
			fallthrough
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
		}
		i += 2
	}
	return b.String()
}

// jsEscape escapes a string for embedding in a JavaScript string
// literal. The input is walked by Unicode code point, not by UTF-16
// code unit:
//
//   - quote, backslash, newline, carriage return, tab, backspace and
//     form feed use their canonical two-character escapes
//   - remaining control characters below 0x20 become \u00XX
//   - code points in [0x7F, 0xFFFF] become \uXXXX
//   - code points above 0xFFFF become a \uHHHH\uLLLL surrogate pair
func jsEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r >= 0x7f && r <= 0xffff):
				fmt.Fprintf(&b, `\u%04x`, r)
			case r > 0xffff:
				hi, lo := surrogatePair(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// jsUnescape decodes JavaScript escape sequences in a single
// left-to-right scan. At each backslash the decoder tries, in priority
// order: \xHH, a \uHHHH\uHHHH surrogate pair recombined into one code
// point, a standalone \uHHHH, then the named two-character escapes.
// Pair recombination must win over standalone \u decoding or
// supplementary-plane characters corrupt into two stray halves.
//
// Unknown two-character sequences (e.g. \q) pass through verbatim.
// Truncated or non-hex \x/\u payloads abort with ErrMalformedEscape,
// returning the text decoded so far.
func jsUnescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 >= len(s) {
			return b.String(), fmt.Errorf("%w: trailing backslash at offset %d", ErrMalformedEscape, i)
		}
		switch s[i+1] {
		case 'x':
			v, err := hexField(s, i+2, 2)
			if err != nil {
				return b.String(), err
			}
			b.WriteRune(rune(v))
			i += 4
		case 'u':
			v, err := hexField(s, i+2, 4)
			if err != nil {
				return b.String(), err
			}
			if isHighSurrogate(v) && i+12 <= len(s) && s[i+6] == '\\' && s[i+7] == 'u' {
				if lo, loErr := hexField(s, i+8, 4); loErr == nil && isLowSurrogate(lo) {
					b.WriteRune(combineSurrogates(v, lo))
					i += 12
					continue
				}
			}
			// A lone surrogate half is not a valid scalar value;
			// Go strings render it as U+FFFD.
			b.WriteRune(rune(v))
			i += 6
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case '"', '\'', '\\':
			b.WriteByte(s[i+1])
			i += 2
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			i += 2
		}
	}
	return b.String(), nil
}

// hexField parses width hex digits starting at start. The escape
// introducer is expected at start-2 so error offsets point at the
// backslash.
func hexField(s string, start, width int) (uint32, error) {
	if start+width > len(s) {
		return 0, fmt.Errorf("%w: truncated escape at offset %d", ErrMalformedEscape, start-2)
	}
	v, err := strconv.ParseUint(s[start:start+width], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex digits at offset %d", ErrMalformedEscape, start-2)
	}
	return uint32(v), nil
}
