package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/styles"
	selecttheme "github.com/goliatone/go-formselect/pkg/theme"
)

// RenderOptions carry per-call collaborators. Both fields are optional:
// renderers fall back to the stock class names and neutral tokens.
type RenderOptions struct {
	// Theme supplies the border and foreground tokens.
	Theme *theme.RendererConfig
	// Classes overrides the class names bound to each visual part.
	Classes styles.Classes
}

// BuildOptions translates the render options into control build options.
func (o RenderOptions) BuildOptions() []control.Option {
	return []control.Option{
		control.WithTokens(selecttheme.FromRendererConfig(o.Theme)),
		control.WithClasses(o.Classes),
	}
}

// Tree builds the control tree for cfg using these options.
func (o RenderOptions) Tree(cfg model.Config) control.Tree {
	return control.Build(cfg, o.BuildOptions()...)
}
