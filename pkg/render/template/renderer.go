package template

import (
	"io"
)

// TemplateRenderer is the seam the HTML renderer draws markup through.
// RenderTemplate may also stream the rendered output into the optional
// writers.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	GlobalContext(data map[string]any) error
}
