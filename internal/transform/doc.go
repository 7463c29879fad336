// Package transform builds URLs for the remote image transformation service.
//
// A transformation URL names the project, the absolute URL of the original
// image, the output format and an optional width:
//
//	https://transform.imagetools.dev/api/v1/image?project=shop&url=https%3A%2F%2Fshop.example%2Fa.jpg&format=webp&width=800
//
// The query parameters always appear in that order. Relative image
// references are resolved with the resolver package before encoding.
//
// # Validation
//
// BuildImageURL checks its inputs in a fixed order and stops at the first
// problem, returning a *ValidationError (or the resolver's
// *ConfigurationError, unchanged). No URL is returned alongside an error.
//
// Nothing in this package fetches or decodes images.
package transform
