package render

import (
	"context"

	"github.com/goliatone/go-formselect/pkg/model"
)

// Renderer converts a select configuration into an output representation
// (HTML markup, terminal text, an interactive prompt transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, cfg model.Config, options RenderOptions) ([]byte, error)
}
