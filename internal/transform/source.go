package transform

import (
	"net/url"
	"path"

	"github.com/disintegration/imaging"
)

// SourceFormat guesses the format of the original image from the extension
// of its URL path: "JPEG", "PNG", "GIF", "TIFF", "BMP", or "unknown".
// data: URIs and extensionless paths report "unknown". The image itself is
// never fetched.
func SourceFormat(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		if u.Scheme == "data" {
			return "unknown"
		}
		p = u.Path
	}

	f, err := imaging.FormatFromFilename(path.Base(p))
	if err != nil {
		return "unknown"
	}
	return f.String()
}
