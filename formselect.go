// Package formselect renders a labelled, styled select control from a
// caller-owned configuration and reports selections back through a callback.
//
// Quick start:
//
//	cfg := formselect.Config{
//		ID:          "size",
//		Label:       "Size",
//		Placeholder: "Choose",
//		Value:       formselect.StringValue(""),
//		Items: []formselect.Option{
//			{Value: formselect.IntValue(1), Text: "Small"},
//			{Value: formselect.IntValue(2), Text: "Large"},
//		},
//	}
//	html, err := formselect.Render(ctx, "vanilla", cfg, formselect.RenderOptions{})
//
// The control never stores the selection: feed the value received by
// Config.OnChange back in as Config.Value on the next render.
package formselect

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/render"
	"github.com/goliatone/go-formselect/pkg/renderers/text"
	"github.com/goliatone/go-formselect/pkg/renderers/tui"
	"github.com/goliatone/go-formselect/pkg/renderers/vanilla"
)

type (
	// Config describes a select control.
	Config = model.Config
	// Option is a {value, text} record.
	Option = model.Option
	// Value is a string or numeric option identifier.
	Value = model.Value
	// ChangeFunc receives selections.
	ChangeFunc = model.ChangeFunc
	// ChangeEvent accompanies every selection.
	ChangeEvent = model.ChangeEvent
	// RenderOptions carries the theme and class collaborators.
	RenderOptions = render.RenderOptions
)

var (
	StringValue = model.StringValue
	NumberValue = model.NumberValue
	IntValue    = model.IntValue
)

// NewRegistry returns a registry holding the vanilla (HTML), text and tui
// renderers with their default settings.
func NewRegistry() (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("formselect: %w", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(text.New())
	registry.MustRegister(tui.New())
	return registry, nil
}

// Render draws cfg with the named renderer from NewRegistry.
func Render(ctx context.Context, rendererName string, cfg Config, opts RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, cfg, opts)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet.
//
// Typical mount:
//
//	mux.Handle("/formselect/",
//	  http.StripPrefix("/formselect/",
//	    http.FileServerFS(formselect.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
