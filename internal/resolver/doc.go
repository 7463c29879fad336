// Package resolver turns image references into absolute URLs.
//
// Absolute references (http://, https://, protocol-relative //, and data:
// URIs) are returned untouched. Everything else is treated as a path and
// joined onto a base URL chosen in this order:
//
//  1. the base URL passed with the call
//  2. the BaseURL of the configuration store
//  3. the page origin reported by the resolver's OriginProvider
//
// When none of them yields a base, Resolve returns a *ConfigurationError.
package resolver
