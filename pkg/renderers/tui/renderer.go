package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/render"
)

// SourceName identifies interactions reported by this renderer.
const SourceName = "tui"

// Event is the native event passed through ChangeEvent.Raw.
type Event struct {
	// Index is the position the user picked in the prompt.
	Index int
	// Option is the text shown for that position.
	Option string
}

// Renderer implements render.Renderer for terminal-driven sessions: it asks
// for a choice, reports it through Config.OnChange and serializes it.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	pageSize     int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		theme:        defaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts for a choice and returns the serialized result. Disabled
// controls are shown but not prompted; their current value is returned
// unchanged and OnChange is not called.
func (r *Renderer) Render(ctx context.Context, cfg model.Config, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	tree := opts.Tree(cfg)
	if tree.Input.Disabled {
		if err := r.driver.Info(ctx, r.disabledMessage(tree)); err != nil {
			return nil, err
		}
		return r.serialize(cfg.ID, cfg.Value)
	}

	entry, err := r.Prompt(ctx, cfg, tree)
	if err != nil {
		return nil, err
	}
	return r.serialize(cfg.ID, entry.Value)
}

// Prompt asks for one entry of tree and dispatches it through control.Select.
func (r *Renderer) Prompt(ctx context.Context, cfg model.Config, tree control.Tree) (control.MenuEntry, error) {
	if tree.SelectableCount() == 0 {
		return control.MenuEntry{}, ErrNoEntries
	}

	defaultIndex := tree.Input.Selected
	if defaultIndex < 0 {
		defaultIndex = 0
	}
	texts := tree.Texts()

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.message(tree),
		Options:      texts,
		DefaultIndex: defaultIndex,
		Help:         r.help(tree),
		PageSize:     r.pageSize,
	})
	if err != nil {
		return control.MenuEntry{}, err
	}

	entry, ok := tree.Entry(idx)
	if !ok {
		return control.MenuEntry{}, fmt.Errorf("%w: index %d", control.ErrNoSuchEntry, idx)
	}
	err = control.Select(cfg, tree, idx, control.Interaction{
		Source: SourceName,
		Raw:    Event{Index: idx, Option: entry.Text},
	})
	if err != nil {
		return control.MenuEntry{}, err
	}
	return entry, nil
}

func (r *Renderer) message(tree control.Tree) string {
	msg := tree.Input.ID
	if tree.Label != nil {
		msg = tree.Label.Text
		if tree.Label.Required {
			msg += r.theme.RequiredSuffix
		}
	}
	return msg
}

func (r *Renderer) help(tree control.Tree) string {
	if tree.HelperText == nil {
		return ""
	}
	if tree.HelperText.Error {
		return r.theme.ErrorPrefix + tree.HelperText.Text
	}
	return tree.HelperText.Text
}

func (r *Renderer) disabledMessage(tree control.Tree) string {
	display := tree.Input.Display
	if display == "" {
		display = "-"
	}
	return fmt.Sprintf("%s%s: %s (disabled)", r.theme.InfoPrefix, r.message(tree), display)
}

func (r *Renderer) serialize(id string, value model.Value) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(value.String() + "\n"), nil
	}
	payload, err := json.Marshal(map[string]model.Value{id: value})
	if err != nil {
		return nil, fmt.Errorf("tui: encode selection: %w", err)
	}
	return payload, nil
}
