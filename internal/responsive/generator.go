package responsive

import (
	"strconv"
	"strings"

	"github.com/ironsheep/image-url-tools-mcp/internal/transform"
)

// Sizes values set by the width and default strategies.
const (
	WidthSizes   = "(min-width: 1024px) 1024px, 100vw"
	DefaultSizes = "100vw"
)

// Strategy names.
const (
	StrategyNonResponsive = "non-responsive"
	StrategySizes         = "sizes"
	StrategyWidth         = "width"
	StrategyDefault       = "default"
)

// Options controls attribute generation.
type Options struct {
	// BaseURL resolves a relative src for this call only.
	BaseURL string `json:"base_url,omitempty"`

	// Width is the intended display width in pixels. Zero means unset.
	Width int `json:"width,omitempty"`

	// Sizes is the sizes attribute the image will be rendered with.
	Sizes string `json:"sizes,omitempty"`

	// Format is passed to every transformation URL.
	Format string `json:"format,omitempty"`

	// Responsive set to false yields a single URL. Nil means true.
	Responsive *bool `json:"responsive,omitempty"`

	// DeviceBreakpoints replaces the default device widths when non-nil.
	DeviceBreakpoints []int `json:"device_breakpoints,omitempty"`

	// ImageBreakpoints replaces the default icon widths when non-nil.
	ImageBreakpoints []int `json:"image_breakpoints,omitempty"`
}

func (o *Options) deviceBreakpoints() []int {
	if o.DeviceBreakpoints != nil {
		return o.DeviceBreakpoints
	}
	return defaultDeviceBreakpoints
}

func (o *Options) imageBreakpoints() []int {
	if o.ImageBreakpoints != nil {
		return o.ImageBreakpoints
	}
	return defaultImageBreakpoints
}

// widthPair returns the width and its double, or nil when no width is set.
func (o *Options) widthPair() []int {
	if o.Width == 0 {
		return nil
	}
	return []int{o.Width, o.Width * 2}
}

// Attributes are the markup attributes for one responsive image.
type Attributes struct {
	Src    string `json:"src"`
	SrcSet string `json:"srcSet"`
	Sizes  string `json:"sizes,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// Generator produces responsive attributes.
type Generator struct {
	// Builder builds each URL. Nil means transform.Default.
	Builder *transform.Builder
}

// Default is the generator used by GetResponsiveImageAttributes.
var Default = &Generator{}

// GetResponsiveImageAttributes generates attributes with the Default
// generator.
func GetResponsiveImageAttributes(project, src string, opts Options) (*Attributes, error) {
	return Default.Attributes(project, src, opts)
}

type strategy struct {
	name    string
	applies func(o *Options) bool
	compute func(g *Generator, project, src string, o *Options) (*Attributes, error)
}

// strategies is evaluated in order; the last entry always applies.
var strategies = []strategy{
	{
		name:    StrategyNonResponsive,
		applies: func(o *Options) bool { return o.Responsive != nil && !*o.Responsive },
		compute: (*Generator).nonResponsive,
	},
	{
		name:    StrategySizes,
		applies: func(o *Options) bool { return o.Sizes != "" },
		compute: (*Generator).sizesBased,
	},
	{
		name:    StrategyWidth,
		applies: func(o *Options) bool { return o.Width != 0 },
		compute: (*Generator).widthBased,
	},
	{
		name:    StrategyDefault,
		applies: func(o *Options) bool { return true },
		compute: (*Generator).deviceOnly,
	},
}

func selectStrategy(o *Options) strategy {
	for _, s := range strategies {
		if s.applies(o) {
			return s
		}
	}
	return strategies[len(strategies)-1]
}

// Strategy names the strategy Attributes would use for opts.
func Strategy(opts Options) string {
	return selectStrategy(&opts).name
}

// Attributes returns the src, srcSet, sizes and width attributes for the
// image src within project. Breakpoints that are not positive are ignored;
// a negative width is a *transform.ValidationError. Any URL building error
// is returned as is and no attributes are produced.
func (g *Generator) Attributes(project, src string, opts Options) (*Attributes, error) {
	if opts.Width < 0 {
		return nil, &transform.ValidationError{Message: transform.ErrMsgWidthPositive}
	}
	return selectStrategy(&opts).compute(g, project, src, &opts)
}

func (g *Generator) nonResponsive(project, src string, o *Options) (*Attributes, error) {
	u, err := g.url(project, src, o, o.Width)
	if err != nil {
		return nil, err
	}
	return &Attributes{Src: u}, nil
}

func (g *Generator) sizesBased(project, src string, o *Options) (*Attributes, error) {
	candidates := uniqueSorted(o.deviceBreakpoints(), o.imageBreakpoints(), o.widthPair())

	widths := candidates
	if frac, ok := minViewportFraction(o.Sizes); ok {
		widths = filterBelow(candidates, float64(defaultDeviceBreakpoints[0])*frac)
	}

	fallback := 0
	switch {
	case len(widths) > 0:
		fallback = widths[0]
	case len(candidates) > 0:
		fallback = candidates[0]
	}

	return g.sweep(project, src, o, widths, fallback, o.Sizes, 0)
}

func (g *Generator) widthBased(project, src string, o *Options) (*Attributes, error) {
	widths := uniqueSorted(o.deviceBreakpoints(), o.imageBreakpoints(), o.widthPair())
	return g.sweep(project, src, o, widths, o.Width, WidthSizes, o.Width)
}

func (g *Generator) deviceOnly(project, src string, o *Options) (*Attributes, error) {
	widths := uniqueSorted(o.deviceBreakpoints())

	fallback := 0
	if len(widths) > 0 {
		fallback = widths[0]
	}
	return g.sweep(project, src, o, widths, fallback, DefaultSizes, 0)
}

// sweep builds one w-descriptor entry per width plus the fallback src.
func (g *Generator) sweep(project, src string, o *Options, widths []int, fallback int, sizes string, width int) (*Attributes, error) {
	entries := make([]string, 0, len(widths))
	for _, w := range widths {
		u, err := g.url(project, src, o, w)
		if err != nil {
			return nil, err
		}
		entries = append(entries, u+" "+strconv.Itoa(w)+"w")
	}

	fallbackURL, err := g.url(project, src, o, fallback)
	if err != nil {
		return nil, err
	}

	return &Attributes{
		Src:    fallbackURL,
		SrcSet: strings.Join(entries, ", "),
		Sizes:  sizes,
		Width:  width,
	}, nil
}

func (g *Generator) url(project, src string, o *Options, width int) (string, error) {
	b := g.Builder
	if b == nil {
		b = transform.Default
	}
	return b.Build(project, src, transform.Options{
		BaseURL: o.BaseURL,
		Format:  o.Format,
		Width:   float64(width),
	})
}
