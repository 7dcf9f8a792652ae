package theme

import (
	"strings"
	"testing"

	gotheme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestFromRendererConfig(t *testing.T) {
	if got := FromRendererConfig(nil); got != Defaults() {
		t.Fatalf("nil config should yield defaults, got %+v", got)
	}

	got := FromRendererConfig(&gotheme.RendererConfig{
		Theme: "acme",
		Tokens: map[string]string{
			KeyBorder: "#cccccc",
		},
	})
	want := Tokens{BorderColor: "#cccccc", CommonBlack: DefaultCommonBlack}
	if got != want {
		t.Fatalf("tokens mismatch: want %+v, got %+v", want, got)
	}
}

func TestFromSelection_MergesVariant(t *testing.T) {
	manifest := &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			KeyBorder:     "#dddddd",
			KeyForeground: "#111111",
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{KeyForeground: "#010101"},
			},
		},
	}
	sel, err := Select(manifest, "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	got := FromSelection(sel)
	want := Tokens{BorderColor: "#dddddd", CommonBlack: "#010101"}
	if got != want {
		t.Fatalf("tokens mismatch: want %+v, got %+v", want, got)
	}

	cfg := RendererConfig(sel)
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected renderer config %+v", cfg)
	}
	if cfg.CSSVars["--common-black"] != "#010101" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}

	if _, err := Select(manifest, "missing"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestDecodeManifest(t *testing.T) {
	manifest, err := DecodeManifest(strings.NewReader(`
name: matte
version: "1.0.0"
tokens:
  grey.200: "#eeeeee"
variants:
  contrast:
    tokens:
      grey.200: "#333333"
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if manifest.Name != "matte" {
		t.Fatalf("unexpected name %q", manifest.Name)
	}
	sel, err := Select(manifest, "contrast")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := FromSelection(sel).BorderColor; got != "#333333" {
		t.Fatalf("unexpected border colour %q", got)
	}

	if _, err := DecodeManifest(strings.NewReader("tokens: {}\n")); err == nil {
		t.Fatalf("expected missing name error")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := CSSVarsStyle(CSSVars(map[string]string{
		KeyForeground: "#000",
		KeyBorder:     "#eee",
	}))
	want := ":root {\n--common-black: #000;\n--grey-200: #eee;\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestCSSVarsStyle_DropsUnsafeDeclarations(t *testing.T) {
	got := CSSVarsStyle(map[string]string{
		"--grey-200":     "#eee",
		"--common-black": "#000</style><script>alert(1)</script>",
		"--x":            "red; } body { display: none",
		"--y</style>":    "#fff",
	})
	want := ":root {\n--grey-200: #eee;\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}

	if got := CSSVarsStyle(map[string]string{"--a": "<b>"}); got != "" {
		t.Fatalf("expected empty style when every declaration is dropped, got %q", got)
	}
}
