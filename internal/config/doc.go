// Package config holds the base-URL configuration used to resolve relative
// image references, plus the host-side configuration of the MCP server.
//
// # Configuration Store
//
// A Store keeps a single Config value. Configure replaces the whole value
// (it never merges), Get returns a copy, and Reset restores the empty
// configuration. The value lives behind an atomic pointer, so a reader
// always observes either the previous or the new configuration in full.
//
// Default is the process-wide store. The package-level Configure, Get and
// Reset functions operate on it; library callers normally call Configure
// once at startup and never again.
//
// # Host Configuration
//
// HostConfig describes how the MCP server is set up: a base URL and page
// origin for resolving relative references, a default project and format,
// and breakpoint overrides. LoadHostConfig reads it from a YAML file, a
// .env file in the working directory, and IMAGE_URL_MCP_* environment
// variables, in increasing order of precedence.
package config
