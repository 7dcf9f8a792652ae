package formselect

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	if _, err := fs.ReadFile(AssetsFS(), "formselect-vanilla.css"); err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
}

func TestEmbeddedTemplatesContainsSelect(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/select.tmpl"); err != nil {
		t.Fatalf("expected select template to be readable: %v", err)
	}
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"text", "tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	cfg := Config{
		ID:          "size",
		Placeholder: "Choose",
		Value:       StringValue(""),
		Items: []Option{
			{Value: IntValue(1), Text: "One"},
			{Value: IntValue(2), Text: "Two"},
		},
	}
	out, err := Render(context.Background(), "vanilla", cfg, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	choose := strings.Index(html, ">Choose<")
	one := strings.Index(html, ">One<")
	two := strings.Index(html, ">Two<")
	if choose < 0 || one < choose || two < one {
		t.Fatalf("expected Choose, One, Two in order:\n%s", html)
	}

	if _, err := Render(context.Background(), "missing", cfg, RenderOptions{}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}
