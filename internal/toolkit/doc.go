// Package toolkit defines the uniform plugin contract for devtools-mcp
// tools and the registry that holds the catalog.
//
// Every tool implements the Tool interface: a Definition carrying
// identity, category, keywords and a JSON schema for the argument
// object, plus an Execute method taking the raw JSON arguments.
// DefaultRegistry wires the full catalog (escape, color, base64, url,
// hash, jwt, json, uuid, epoch); tools can be switched off through the
// configuration file.
//
// The registry is immutable after construction, so both the MCP server
// and the CLI read from it without synchronization.
package toolkit
