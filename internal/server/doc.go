// Package server implements the MCP (Model Context Protocol) server for
// the devtools catalog.
//
// This package provides a JSON-RPC 2.0 server that exposes the
// developer-utility tools through the MCP protocol, so MCP-compatible
// clients can run encodings, conversions and inspections as tool calls.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The tool catalog comes from toolkit.DefaultRegistry:
//
// Escape/Unescape:
//   - escape: HTML, JSON, XML and JavaScript escaping both directions
//
// Design:
//   - color: HEX/RGB/HSL color conversion
//
// Encoding:
//   - base64: Base64 encode/decode
//   - url: URL percent encode/decode
//
// Security:
//   - hash: md5/sha1/sha256/sha512 digests
//   - jwt: JWT decoding without signature verification
//
// Text:
//   - json: JSON format/minify/validate
//   - uuid: UUID v1/v4 generation
//
// Time:
//   - epoch: Unix timestamp conversion
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client or via the CLI's
// serve command:
//
//	srv := server.New(toolkit.DefaultRegistry(cfg), version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Logging goes to stderr; stdout carries only protocol traffic.
package server
