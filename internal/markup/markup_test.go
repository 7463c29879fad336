package markup

import (
	"strings"
	"testing"

	"github.com/ironsheep/image-url-tools-mcp/internal/responsive"
)

func sampleAttrs() *responsive.Attributes {
	return &responsive.Attributes{
		Src:    "https://transform.imagetools.dev/api/v1/image?project=shop&url=x&format=webp&width=800",
		SrcSet: "https://transform.imagetools.dev/api/v1/image?project=shop&url=x&format=webp&width=800 800w",
		Sizes:  "(min-width: 1024px) 1024px, 100vw",
		Width:  800,
	}
}

func TestRenderImgTag(t *testing.T) {
	got, err := RenderImgTag(sampleAttrs(), TagOptions{Alt: "Hero"})
	if err != nil {
		t.Fatalf("RenderImgTag failed: %v", err)
	}

	if !strings.HasPrefix(got, "<img ") || !strings.HasSuffix(got, "/>") {
		t.Errorf("not a void img element: %s", got)
	}

	for _, want := range []string{
		`src="https://transform.imagetools.dev/api/v1/image?project=shop&amp;url=x&amp;format=webp&amp;width=800"`,
		`srcset="`,
		` 800w"`,
		`sizes="(min-width: 1024px) 1024px, 100vw"`,
		`width="800"`,
		`alt="Hero"`,
		`loading="lazy"`,
		`decoding="async"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
	if strings.Contains(got, "style=") {
		t.Errorf("unexpected style attribute: %s", got)
	}
}

func TestRenderImgTag_NonResponsive(t *testing.T) {
	attrs := &responsive.Attributes{Src: "https://transform.imagetools.dev/api/v1/image?project=p"}

	got, err := RenderImgTag(attrs, TagOptions{})
	if err != nil {
		t.Fatalf("RenderImgTag failed: %v", err)
	}
	for _, absent := range []string{"srcset=", "sizes=", "width="} {
		if strings.Contains(got, absent) {
			t.Errorf("unexpected %s in %s", absent, got)
		}
	}
	if !strings.Contains(got, `alt=""`) {
		t.Errorf("alt should always be present: %s", got)
	}
}

func TestRenderImgTag_EscapesAlt(t *testing.T) {
	got, err := RenderImgTag(sampleAttrs(), TagOptions{Alt: `"quoted" <b>`})
	if err != nil {
		t.Fatalf("RenderImgTag failed: %v", err)
	}
	if !strings.Contains(got, `alt="&#34;quoted&#34; &lt;b&gt;"`) {
		t.Errorf("alt not escaped: %s", got)
	}
}

func TestRenderImgTag_Loading(t *testing.T) {
	got, err := RenderImgTag(sampleAttrs(), TagOptions{Loading: LoadingEager})
	if err != nil {
		t.Fatalf("RenderImgTag failed: %v", err)
	}
	if !strings.Contains(got, `loading="eager"`) {
		t.Errorf("missing eager loading: %s", got)
	}

	if _, err := RenderImgTag(sampleAttrs(), TagOptions{Loading: "auto"}); err == nil {
		t.Error("expected error for unknown loading mode")
	}
}

func TestRenderImgTag_Placeholder(t *testing.T) {
	tests := []struct {
		name        string
		placeholder string
		want        string
		wantErr     bool
	}{
		{"six digit", "#E0D8C8", "background-color:#e0d8c8", false},
		{"shorthand", "#abc", "background-color:#aabbcc", false},
		{"not a colour", "beige", "", true},
		{"bad digits", "#zzzzzz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderImgTag(sampleAttrs(), TagOptions{Placeholder: tt.placeholder})
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(got, tt.want) {
				t.Errorf("missing %s in %s", tt.want, got)
			}
		})
	}
}

func TestRenderImgTag_NilAttributes(t *testing.T) {
	if _, err := RenderImgTag(nil, TagOptions{}); err == nil {
		t.Error("expected error for nil attributes")
	}
}

func TestExpandHex(t *testing.T) {
	tests := map[string]string{
		"#abc":    "#aabbcc",
		"#aabbcc": "#aabbcc",
		"abc":     "abc",
		"":        "",
	}
	for in, want := range tests {
		if got := expandHex(in); got != want {
			t.Errorf("expandHex(%q) = %q, want %q", in, got, want)
		}
	}
}
