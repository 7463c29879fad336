// Package markup renders responsive attribute sets as HTML <img> elements.
package markup

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ironsheep/image-url-tools-mcp/internal/responsive"
)

// Loading modes accepted by TagOptions.Loading.
const (
	LoadingLazy  = "lazy"
	LoadingEager = "eager"
)

// TagOptions adds the attributes that do not come from the transformation
// service.
type TagOptions struct {
	// Alt is the alternative text. The attribute is always written.
	Alt string

	// Loading is "lazy" (the default when empty) or "eager".
	Loading string

	// Placeholder is a CSS hex colour shown while the image loads, such as
	// "#e0d8c8" or "#abc". Empty means no placeholder.
	Placeholder string
}

// RenderImgTag returns attrs as an <img> element. Attribute values are
// escaped; empty srcset and sizes are left out.
func RenderImgTag(attrs *responsive.Attributes, opts TagOptions) (string, error) {
	if attrs == nil {
		return "", fmt.Errorf("no attributes to render")
	}

	loading := opts.Loading
	switch loading {
	case "":
		loading = LoadingLazy
	case LoadingLazy, LoadingEager:
	default:
		return "", fmt.Errorf("invalid loading mode %q: expected lazy or eager", opts.Loading)
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     atom.Img.String(),
	}
	add := func(key, val string) {
		node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
	}

	add("src", attrs.Src)
	if attrs.SrcSet != "" {
		add("srcset", attrs.SrcSet)
	}
	if attrs.Sizes != "" {
		add("sizes", attrs.Sizes)
	}
	if attrs.Width > 0 {
		add("width", strconv.Itoa(attrs.Width))
	}
	add("alt", opts.Alt)
	add("loading", loading)
	add("decoding", "async")

	if opts.Placeholder != "" {
		c, err := colorful.Hex(expandHex(opts.Placeholder))
		if err != nil {
			return "", fmt.Errorf("invalid placeholder color %q: %w", opts.Placeholder, err)
		}
		add("style", "background-color:"+c.Hex())
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", fmt.Errorf("failed to render img tag: %w", err)
	}
	return buf.String(), nil
}

// expandHex turns the CSS shorthand "#abc" into "#aabbcc".
func expandHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
