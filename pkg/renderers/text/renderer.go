// Package text renders a static terminal preview of the select control with
// lipgloss: the label, the bordered input showing the current display text,
// the menu entries and the helper text.
package text

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/render"
)

const (
	indicatorGlyph = "▾"
	selectedMark   = "●"
	unselectedMark = "○"
	errorColor     = lipgloss.Color("#d32f2f")
	mutedColor     = lipgloss.Color("#6b7280")
)

// Option configures the text renderer.
type Option func(*Renderer)

// WithWidth fixes the width of the input frame. Zero sizes the frame to its
// content.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.width = width
		}
	}
}

// WithMenu toggles the menu listing below the input.
func WithMenu(show bool) Option {
	return func(r *Renderer) {
		r.showMenu = show
	}
}

// Renderer implements render.Renderer for terminal previews.
type Renderer struct {
	width    int
	showMenu bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer. The menu is listed by default.
func New(options ...Option) *Renderer {
	r := &Renderer{showMenu: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws cfg. Styling is dropped automatically when the output is not a
// terminal.
func (r *Renderer) Render(ctx context.Context, cfg model.Config, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(r.View(opts.Tree(cfg))), nil
}

// View renders an already built tree.
func (r *Renderer) View(tree control.Tree) string {
	var lines []string

	if label := tree.Label; label != nil {
		text := label.Text
		if label.Required {
			text += " *"
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(label.Color)).
			Bold(true).
			Render(text))
	}

	lines = append(lines, r.inputView(tree))

	if r.showMenu && len(tree.Menu.Entries) > 0 {
		for _, entry := range tree.Menu.Entries {
			lines = append(lines, entryView(entry, tree.Input.Disabled))
		}
	}

	if helper := tree.HelperText; helper != nil {
		style := lipgloss.NewStyle().Foreground(mutedColor)
		if helper.Error {
			style = lipgloss.NewStyle().Foreground(errorColor)
		}
		lines = append(lines, style.Render(helper.Text))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) inputView(tree control.Tree) string {
	display := tree.Input.Display
	contentStyle := lipgloss.NewStyle()
	if tree.Input.ShowsPlaceholder || display == "" {
		contentStyle = contentStyle.Foreground(mutedColor)
	}
	if tree.Input.Disabled {
		contentStyle = contentStyle.Faint(true)
	}

	content := contentStyle.Render(display) + " " + indicatorGlyph
	if r.width > 0 {
		// frame border (2) and padding (2) sit outside the content
		inner := r.width - 4
		if inner < 1 {
			inner = 1
		}
		pad := inner - lipgloss.Width(content)
		if pad > 0 {
			content = contentStyle.Render(display) + strings.Repeat(" ", pad+1) + indicatorGlyph
		}
	}

	borderColor := lipgloss.Color(tree.Input.BorderColor)
	if tree.FormControl.Error {
		borderColor = errorColor
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	return frame.Render(content)
}

func entryView(entry control.MenuEntry, disabled bool) string {
	mark := unselectedMark
	style := lipgloss.NewStyle()
	if entry.Selected {
		mark = selectedMark
		style = style.Bold(true)
	}
	if entry.Placeholder {
		style = style.Foreground(mutedColor)
	}
	if disabled {
		style = style.Faint(true)
	}
	return "  " + style.Render(mark+" "+entry.Text)
}
