// Package server implements the MCP (Model Context Protocol) shell around
// the inset rendering pipeline: a JSON-RPC 2.0 loop over stdin/stdout, the
// tool catalog, argument validation (selection size, zoom range, output
// cap), and the in-process metadata store that ties extracted insets back
// to their source images.
//
// The server owns all interactive-shell responsibilities the engine
// deliberately excludes: it resolves tool arguments into fully explicit
// geometric and style parameters before invoking the pipeline, and it
// enforces the zoom range [1.5, 10] plus the 8000 pixel longest-edge cap on
// resampled output.
package server
