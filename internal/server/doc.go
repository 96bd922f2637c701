// Package server implements the MCP (Model Context Protocol) server for the
// Munsell color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes Munsell notation
// parsing, hue-circle conversion, sRGB preview, swatch rendering, and image
// color picking through the MCP protocol.
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
// Notation:
//   - munsell_parse: Parse and validate a combined spec string
//   - munsell_compose: Build a color from discrete hue/value/chroma fields
//
// Hue circle:
//   - munsell_degree: Hue spec to linear 0-100 degree
//   - munsell_undegree: Degree back to canonical hue spec
//   - munsell_hue_circle: The ten families in circular order
//
// sRGB conversion:
//   - munsell_to_srgb: Approximate in-gamut preview of a notation
//   - munsell_from_srgb: Nearest notation for an sRGB color
//
// Rendering:
//   - munsell_swatch: Single-color swatch PNG
//   - munsell_value_scale: Value ramp strip PNG
//   - munsell_hue_page: Value/chroma chart PNG for one hue
//
// Image picking:
//   - munsell_sample: Name the pixel at (x, y) of an image file
//   - munsell_dominant: Name the most common colors of an image
//
// # Image Caching
//
// The picking tools maintain an in-memory cache of decoded images keyed by
// path, reused across tool calls for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 (or standard JSON-RPC codes for malformed requests); the data field
// carries the Go error string. Notation validation failures keep their
// field-specific messages, and the degree/undegree usage panics are recovered
// at the tool boundary.
package server
