// Package imageurl builds URLs for a remote image transformation service
// and the srcSet/sizes attributes that serve them responsively.
//
// Configure a base URL once at startup so relative image references can be
// resolved, then build URLs or attribute sets per image:
//
//	imageurl.Configure(imageurl.Config{BaseURL: "https://shop.example"})
//
//	u, err := imageurl.BuildImageURL("shop", "/img/shoe.jpg", imageurl.URLOptions{Width: 640})
//
//	attrs, err := imageurl.GetResponsiveImageAttributes("shop", "/img/shoe.jpg",
//	    imageurl.ResponsiveOptions{Sizes: "(min-width: 768px) 50vw, 100vw"})
//
// Errors are *ValidationError for bad input and *ConfigurationError when a
// relative reference has no base URL to resolve against.
package imageurl

import (
	"github.com/ironsheep/image-url-tools-mcp/internal/config"
	"github.com/ironsheep/image-url-tools-mcp/internal/markup"
	"github.com/ironsheep/image-url-tools-mcp/internal/resolver"
	"github.com/ironsheep/image-url-tools-mcp/internal/responsive"
	"github.com/ironsheep/image-url-tools-mcp/internal/transform"
)

type (
	// Config is the library-wide configuration.
	Config = config.Config

	// URLOptions tunes a single transformation URL.
	URLOptions = transform.Options

	// ResponsiveOptions controls responsive attribute generation.
	ResponsiveOptions = responsive.Options

	// ResponsiveAttributes are the src, srcSet, sizes and width attributes
	// of one image.
	ResponsiveAttributes = responsive.Attributes

	// TagOptions adds alt text, loading mode and a placeholder colour to
	// a rendered <img> element.
	TagOptions = markup.TagOptions

	// OriginProvider reports the origin of the hosting page, if any.
	OriginProvider = resolver.OriginProvider

	// ValidationError reports invalid input.
	ValidationError = transform.ValidationError

	// ConfigurationError reports a relative URL with no base URL available.
	ConfigurationError = resolver.ConfigurationError
)

// Endpoint is the transformation service's base path.
const Endpoint = transform.Endpoint

// Configure replaces the process-wide configuration.
func Configure(cfg Config) { config.Configure(cfg) }

// GetConfig returns a copy of the process-wide configuration.
func GetConfig() Config { return config.Get() }

// ResetConfig restores the empty configuration.
func ResetConfig() { config.Reset() }

// SetOriginProvider installs the page-origin fallback used when neither a
// per-call nor a configured base URL is available. Nil removes it.
func SetOriginProvider(p OriginProvider) { resolver.SetOriginProvider(p) }

// IsRelativeURL reports whether url needs a base URL.
func IsRelativeURL(url string) bool { return resolver.IsRelativeURL(url) }

// ResolveURL makes url absolute, preferring baseURL, then the configured
// base URL, then the page origin.
func ResolveURL(url, baseURL string) (string, error) {
	return resolver.Resolve(url, baseURL)
}

// BuildImageURL returns the transformation URL for originalImageURL within
// projectSlug.
func BuildImageURL(projectSlug, originalImageURL string, opts URLOptions) (string, error) {
	return transform.BuildImageURL(projectSlug, originalImageURL, opts)
}

// GetResponsiveImageAttributes returns responsive attributes for src within
// project.
func GetResponsiveImageAttributes(project, src string, opts ResponsiveOptions) (*ResponsiveAttributes, error) {
	return responsive.GetResponsiveImageAttributes(project, src, opts)
}

// RenderImgTag renders attrs as an HTML <img> element.
func RenderImgTag(attrs *ResponsiveAttributes, opts TagOptions) (string, error) {
	return markup.RenderImgTag(attrs, opts)
}
