package transform

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/ironsheep/image-url-tools-mcp/internal/resolver"
)

// Endpoint is the transformation service's base path.
const Endpoint = "https://transform.imagetools.dev/api/v1/image"

// Supported output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// DefaultFormat is used when Options.Format is empty.
const DefaultFormat = FormatWebP

// ValidationError reports invalid input to BuildImageURL.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation messages.
const (
	ErrMsgProjectRequired = "projectSlug is required."
	ErrMsgURLRequired     = "originalImageUrl is required."
	ErrMsgInvalidFormat   = "Invalid format. Supported formats are webp and png."
	ErrMsgWidthNaN        = "Width must be a number."
	ErrMsgWidthPositive   = "Width must be a positive number."
	ErrMsgWidthInteger    = "Width must be a whole number of pixels."
)

// Options tunes a single transformation URL.
type Options struct {
	// BaseURL resolves a relative image reference for this call only.
	BaseURL string `json:"base_url,omitempty"`

	// Format is "webp" or "png". Empty means DefaultFormat.
	Format string `json:"format,omitempty"`

	// Width is the requested output width in whole pixels. Zero means the
	// service's natural width and is left out of the URL.
	Width float64 `json:"width,omitempty"`
}

// Builder assembles transformation URLs.
type Builder struct {
	// Resolver resolves relative image references. Nil means
	// resolver.Default.
	Resolver *resolver.Resolver

	// Endpoint overrides the service base path. Empty means Endpoint.
	Endpoint string
}

// Default is the builder used by BuildImageURL.
var Default = &Builder{}

// BuildImageURL builds a transformation URL with the Default builder.
func BuildImageURL(project, originalImageURL string, opts Options) (string, error) {
	return Default.Build(project, originalImageURL, opts)
}

// Build validates its inputs and returns the transformation URL for the
// image at originalImageURL within project.
func (b *Builder) Build(project, originalImageURL string, opts Options) (string, error) {
	if project == "" {
		return "", &ValidationError{Message: ErrMsgProjectRequired}
	}
	if originalImageURL == "" {
		return "", &ValidationError{Message: ErrMsgURLRequired}
	}

	res := b.Resolver
	if res == nil {
		res = resolver.Default
	}
	resolved, err := res.Resolve(originalImageURL, opts.BaseURL)
	if err != nil {
		return "", err
	}

	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	if format != FormatWebP && format != FormatPNG {
		return "", &ValidationError{Message: ErrMsgInvalidFormat}
	}

	if math.IsNaN(opts.Width) {
		return "", &ValidationError{Message: ErrMsgWidthNaN}
	}
	if opts.Width < 0 || math.IsInf(opts.Width, 0) {
		return "", &ValidationError{Message: ErrMsgWidthPositive}
	}
	if opts.Width != math.Trunc(opts.Width) {
		return "", &ValidationError{Message: ErrMsgWidthInteger}
	}

	var q strings.Builder
	q.WriteString("project=")
	q.WriteString(url.QueryEscape(project))
	q.WriteString("&url=")
	q.WriteString(url.QueryEscape(resolved))
	q.WriteString("&format=")
	q.WriteString(strings.ToLower(format))
	if opts.Width != 0 {
		q.WriteString("&width=")
		q.WriteString(strconv.FormatInt(int64(opts.Width), 10))
	}

	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = Endpoint
	}
	return endpoint + "?" + q.String(), nil
}
