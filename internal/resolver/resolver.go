package resolver

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ironsheep/image-url-tools-mcp/internal/config"
)

// absolutePrefixes mark references that never need a base URL.
var absolutePrefixes = []string{"http://", "https://", "//", "data:"}

// OriginProvider reports the origin of the page hosting the caller, if the
// host environment has one.
type OriginProvider func() (string, bool)

// ConfigurationError is returned when a relative URL cannot be resolved
// because no base URL is available.
type ConfigurationError struct {
	// URL is the relative reference that could not be resolved.
	URL string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot resolve relative URL %q: no base URL available. "+
		"Set a base URL with Configure, pass a base URL with the call, "+
		"or run where the page origin can be detected automatically.", e.URL)
}

// Resolver joins relative references onto a base URL.
type Resolver struct {
	// Store supplies the configured base URL. Nil means config.Default.
	Store *config.Store

	// origin is consulted last. Unset disables origin detection.
	origin atomic.Pointer[OriginProvider]
}

// SetOrigin installs p as r's origin fallback. A nil p removes it. The
// provider is swapped as a whole, so concurrent Resolve calls see either the
// old or the new one.
func (r *Resolver) SetOrigin(p OriginProvider) {
	if p == nil {
		r.origin.Store(nil)
		return
	}
	r.origin.Store(&p)
}

// Default is the resolver used by the package-level functions.
var Default = &Resolver{}

// SetOriginProvider installs p on the Default resolver. A nil p removes
// origin detection.
func SetOriginProvider(p OriginProvider) {
	Default.SetOrigin(p)
}

// IsRelativeURL reports whether url needs a base URL to be usable.
func IsRelativeURL(url string) bool {
	for _, prefix := range absolutePrefixes {
		if strings.HasPrefix(url, prefix) {
			return false
		}
	}
	return true
}

// Resolve resolves url with the Default resolver.
func Resolve(url, baseURL string) (string, error) {
	return Default.Resolve(url, baseURL)
}

// Resolve returns url unchanged when it is absolute. Otherwise it prefixes
// url with the first base URL available: baseURL, the store's BaseURL, then
// the origin provider.
func (r *Resolver) Resolve(url, baseURL string) (string, error) {
	if !IsRelativeURL(url) {
		return url, nil
	}

	base := r.base(baseURL)
	if base == "" {
		return "", &ConfigurationError{URL: url}
	}

	return join(base, url), nil
}

func (r *Resolver) base(override string) string {
	if override != "" {
		return override
	}

	store := r.Store
	if store == nil {
		store = config.Default
	}
	if cfg := store.Get(); cfg.BaseURL != "" {
		return cfg.BaseURL
	}

	if p := r.origin.Load(); p != nil {
		if origin, ok := (*p)(); ok {
			return origin
		}
	}
	return ""
}

// join strips one trailing slash from base and makes path start with
// exactly one slash. Query strings and fragments are left as they are.
func join(base, path string) string {
	base = strings.TrimSuffix(base, "/")

	path = strings.TrimPrefix(path, "./")
	path = "/" + strings.TrimLeft(path, "/")

	return base + path
}
