// Package escape implements the multi-format text escaping codec used
// by the escape tool.
//
// Four grammars are supported, modeled as a closed Format enum so the
// dispatch is exhaustive at compile time:
//
//   - HTML: the five significant characters escape to entities; unescape
//     additionally resolves well-known named entities (&nbsp; and friends)
//   - XML: restricted to the five XML-predefined entities, both ways
//   - JSON: the inner content of a JSON string literal, without the
//     surrounding quotes
//   - JavaScript: per-code-point escaping including \u00XX control
//     escapes and UTF-16 surrogate pairs for supplementary-plane
//     characters
//
// # Round-trip Invariant
//
// For every format, unescaping an escaped string reproduces the
// original exactly, including characters outside the Basic Multilingual
// Plane. JavaScript escaping walks the input by Unicode scalar value
// and encodes code points above U+FFFF as a \uHHHH\uLLLL surrogate
// pair; unescaping recombines such pairs before decoding standalone
// \uHHHH sequences.
//
// # Error Handling
//
// HTML and XML transforms are total and never fail. JSON and
// JavaScript unescaping report ErrMalformedEscape for truncated or
// invalid \x/\u payloads; the tool adapter treats that as best-effort
// and returns the input unchanged rather than surfacing a hard error.
//
// All functions are pure: no state is shared between calls and
// concurrent use is safe.
package escape
