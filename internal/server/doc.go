// Package server implements the MCP (Model Context Protocol) server for
// endoscopic boundary detection tools.
//
// This package provides a JSON-RPC 2.0 server exposing the boundary detectors
// and their frame-handling collaborators to MCP-compatible clients.
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
// Frame Information:
//   - image_load: Load a frame and get metadata
//   - image_dimensions: Get width and height
//
// Boundary Detection:
//   - boundary_rectangle: Minimal box enclosing the illuminated region
//   - boundary_circle: Centroid and radius of the enclosing circle
//   - boundary_overlay: Frame with both results drawn on top
//   - boundary_crop: Frame cropped to the detected box
//
// # Frame Caching
//
// Decoded frames are cached by path for the lifetime of the server process,
// so running several detections on the same capture decodes it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data. Detector failures (empty region,
// malformed grid) surface their sentinel error messages verbatim.
package server
