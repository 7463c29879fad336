// Package server implements the MCP (Model Context Protocol) server for image
// transformation URLs.
//
// This package provides a JSON-RPC 2.0 server that exposes the URL builder,
// the responsive attributes generator and the base-URL configuration through
// the MCP protocol, so MCP clients can produce image markup that points at
// the transformation service.
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
// URL Building:
//   - image_url_build: Transformation URL for one image
//   - image_responsive_attributes: src, srcSet, sizes and width
//   - image_img_tag: Complete <img> element
//
// URL Resolution:
//   - image_url_resolve: Make a relative reference absolute
//   - image_url_is_relative: Check whether a reference needs a base URL
//
// Configuration:
//   - image_config_get, image_config_set, image_config_reset
//
// # Configuration
//
// Each Server owns its configuration store, seeded from the host
// configuration passed to New. image_config_set replaces it for the
// lifetime of the process. Omitted project, format and breakpoint arguments
// fall back to the host configuration.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "Invalid format. Supported formats are webp and png."
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	host, err := config.LoadHostConfig(os.Getenv(config.EnvConfigPath))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(host)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
