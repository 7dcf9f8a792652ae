package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/render"
	rendertemplate "github.com/goliatone/go-formselect/pkg/render/template"
	"github.com/goliatone/go-formselect/pkg/render/template/pongo"
	selecttheme "github.com/goliatone/go-formselect/pkg/theme"
)

// SourceName identifies interactions reported by this renderer.
const SourceName = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	stylesheets      []string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultStyles inlines the bundled stylesheet ahead of the control.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet links an external stylesheet ahead of the control.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// Renderer draws the select control as server-side HTML.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
	stylesheets  []string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := pongo.WithFS(cfg.templateFS)
		if cfg.templateDir != "" {
			source = pongo.WithBaseDir(cfg.templateDir)
		}
		engine, err := pongo.New(source, pongo.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if err := renderer.GlobalContext(map[string]any{"chrome": chromeClasses()}); err != nil {
		return nil, fmt.Errorf("vanilla renderer: seed template globals: %w", err)
	}

	return &Renderer{
		templates:    renderer,
		inlineStyles: cfg.inlineStyles,
		stylesheets:  cfg.stylesheets,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws cfg. The output is a fragment meant to be embedded in a form.
func (r *Renderer) Render(ctx context.Context, cfg model.Config, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	tree := opts.Tree(cfg)
	view := r.buildView(tree, opts)

	result, err := r.templates.RenderTemplate(templateName, view)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) buildView(tree control.Tree, opts render.RenderOptions) map[string]any {
	view := map[string]any{
		"indicator":   indicatorMarkup(tree.Input.Indicator),
		"stylesheets": r.stylesheets,
		"control": map[string]any{
			"class":   tree.FormControl.Class,
			"variant": tree.FormControl.Variant,
			"error":   tree.FormControl.Error,
		},
		"input": map[string]any{
			"id":           tree.Input.ID,
			"inputId":      tree.Input.InputID,
			"class":        tree.Input.Class,
			"border":       tree.Input.Border,
			"labelledBy":   tree.Input.LabelledBy,
			"describedBy":  tree.Input.DescribedBy,
			"invalid":      tree.Input.Invalid,
			"required":     tree.Input.Required,
			"disabled":     tree.Input.Disabled,
			"displayEmpty": tree.Input.DisplayEmpty,
		},
	}
	if r.inlineStyles {
		view["stylesheet"] = defaultStylesheet()
	}
	if opts.Theme != nil {
		view["themeName"] = opts.Theme.Theme
		view["cssVars"] = selecttheme.CSSVarsStyle(opts.Theme.CSSVars)
	}

	if label := tree.Label; label != nil {
		view["label"] = map[string]any{
			"id":       label.ID,
			"target":   label.For,
			"html":     sanitizeInline(label.Text),
			"class":    label.Class,
			"required": label.Required,
			"color":    label.Color,
		}
	}
	if helper := tree.HelperText; helper != nil {
		view["helper"] = map[string]any{
			"id":    helper.ID,
			"html":  sanitizeInline(helper.Text),
			"error": helper.Error,
		}
	}

	entries := make([]any, 0, len(tree.Menu.Entries))
	for _, entry := range tree.Menu.Entries {
		entries = append(entries, map[string]any{
			"value":       entry.Value.String(),
			"valueType":   entry.Value.Kind().String(),
			"text":        entry.Text,
			"class":       entry.Class,
			"selected":    entry.Selected,
			"placeholder": entry.Placeholder,
		})
	}
	view["entries"] = entries
	// A native select shows its first option when none is marked selected,
	// so an unmatched value gets a hidden blank entry instead.
	view["blank"] = tree.Input.Selected < 0
	return view
}

func indicatorMarkup(indicator control.Indicator) string {
	switch indicator {
	case control.IndicatorChevronDown:
		return chevronDown
	default:
		return ""
	}
}

// Submit resolves the value posted for cfg in form and reports it through
// cfg.OnChange. raw is forwarded as the native event, typically the
// *http.Request that carried the submission.
func Submit(cfg model.Config, form url.Values, opts render.RenderOptions, raw any) error {
	// Browsers never post a disabled select.
	if cfg.Disabled {
		return fmt.Errorf("%w: %q", control.ErrDisabled, cfg.ID)
	}
	if _, ok := form[cfg.ID]; !ok {
		return fmt.Errorf("%w: no value submitted for %q", control.ErrNoSuchEntry, cfg.ID)
	}
	return control.SelectSubmitted(cfg, opts.Tree(cfg), form.Get(cfg.ID), control.Interaction{
		Source: SourceName,
		Raw:    raw,
	})
}
