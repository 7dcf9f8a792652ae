package control

import (
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/styles"
	"github.com/goliatone/go-formselect/pkg/theme"
)

// Indicator identifies the glyph drawn at the end of the input surface.
type Indicator string

// IndicatorChevronDown replaces the toolkit's default triangle.
const IndicatorChevronDown Indicator = "chevron-down"

// VariantOutlined is the only container variant the control uses.
const VariantOutlined = "outlined"

// Tree is the composed visual output for one configuration.
type Tree struct {
	FormControl FormControl
	// Label is nil when no label was configured.
	Label *Label
	Input Input
	Menu  Menu
	// HelperText is nil when no helper text was configured.
	HelperText *HelperText
}

// FormControl is the outer container.
type FormControl struct {
	Class   string
	Variant string
	Error   bool
}

// Label sits above the input and points at it through For.
type Label struct {
	ID       string
	For      string
	Text     string
	Class    string
	Required bool
	// Color and FocusColor are identical: the label does not change colour
	// when the input gains focus.
	Color      string
	FocusColor string
}

// Input is the bordered surface that opens the menu.
type Input struct {
	ID      string
	InputID string
	// DescribedBy is the helper text id, empty when there is no helper text.
	DescribedBy  string
	LabelledBy   string
	Class        string
	Border       string
	BorderColor  string
	Rounded      bool
	FullWidth    bool
	Disabled     bool
	Required     bool
	Invalid      bool
	DisplayEmpty bool
	Indicator    Indicator
	// Display is the text shown in the closed control.
	Display string
	// ShowsPlaceholder is set when Display comes from the placeholder sentinel.
	ShowsPlaceholder bool
	// Selected is the index of the selected menu entry, -1 when none.
	Selected int
}

// Menu lists the selectable entries in display order.
type Menu struct {
	Entries []MenuEntry
}

// MenuEntry is one rendered menu item.
type MenuEntry struct {
	model.Entry
	Class    string
	Selected bool
}

// HelperText sits below the input.
type HelperText struct {
	ID    string
	Text  string
	Error bool
}

// Option customises Build.
type Option func(*buildConfig)

type buildConfig struct {
	classes styles.Classes
	tokens  theme.Tokens
}

// WithClasses overrides class names. Empty fields keep their defaults.
func WithClasses(classes styles.Classes) Option {
	return func(cfg *buildConfig) {
		cfg.classes = cfg.classes.Merge(classes)
	}
}

// WithTokens supplies theme tokens. Empty tokens fall back to the defaults.
func WithTokens(tokens theme.Tokens) Option {
	return func(cfg *buildConfig) {
		cfg.tokens = tokens.WithFallbacks()
	}
}

// LabelID returns the id assigned to the label of control id.
func LabelID(id string) string {
	return id + "-label"
}

// InputID returns the id assigned to the input surface of control id.
func InputID(id string) string {
	return id + "-input"
}

// HelperTextID returns the id assigned to the helper text of control id.
func HelperTextID(id string) string {
	return id + "-helper-text"
}

// Build composes the visual tree for cfg.
func Build(cfg model.Config, options ...Option) Tree {
	bc := buildConfig{
		classes: styles.Defaults(),
		tokens:  theme.Defaults(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&bc)
	}

	tree := Tree{
		FormControl: FormControl{
			Class:   bc.classes.FormControl,
			Variant: VariantOutlined,
			Error:   cfg.Error,
		},
		Menu: buildMenu(cfg, bc.classes.MenuItem),
	}

	if cfg.Label != "" {
		tree.Label = &Label{
			ID:         LabelID(cfg.ID),
			For:        cfg.ID,
			Text:       cfg.Label,
			Class:      bc.classes.Label,
			Required:   cfg.Required,
			Color:      bc.tokens.CommonBlack,
			FocusColor: bc.tokens.CommonBlack,
		}
	}
	if cfg.HelperText != "" {
		tree.HelperText = &HelperText{
			ID:    HelperTextID(cfg.ID),
			Text:  cfg.HelperText,
			Error: cfg.Error,
		}
	}

	tree.Input = Input{
		ID:           cfg.ID,
		InputID:      InputID(cfg.ID),
		Class:        bc.classes.Input,
		Border:       "1px solid " + bc.tokens.BorderColor,
		BorderColor:  bc.tokens.BorderColor,
		Rounded:      true,
		FullWidth:    true,
		Disabled:     cfg.Disabled,
		Required:     cfg.Required,
		Invalid:      cfg.Error,
		DisplayEmpty: cfg.Placeholder != "",
		Indicator:    IndicatorChevronDown,
		Selected:     -1,
	}
	if tree.Label != nil {
		tree.Input.LabelledBy = tree.Label.ID
	}
	if tree.HelperText != nil {
		tree.Input.DescribedBy = tree.HelperText.ID
	}

	if idx := matchEntry(tree.Menu.Entries, cfg.Value); idx >= 0 {
		entry := &tree.Menu.Entries[idx]
		entry.Selected = true
		tree.Input.Selected = idx
		tree.Input.Display = entry.Text
		tree.Input.ShowsPlaceholder = entry.Placeholder
	}

	return tree
}

func buildMenu(cfg model.Config, class string) Menu {
	size := len(cfg.Items)
	if cfg.Placeholder != "" {
		size++
	}
	entries := make([]MenuEntry, 0, size)
	if cfg.Placeholder != "" {
		entries = append(entries, MenuEntry{
			Entry: model.Entry{
				Index:       0,
				Value:       model.StringValue(""),
				Text:        cfg.Placeholder,
				Placeholder: true,
			},
			Class: class,
		})
	}
	for _, item := range cfg.Items {
		entries = append(entries, MenuEntry{
			Entry: model.Entry{
				Index: len(entries),
				Value: item.Value,
				Text:  item.Text,
			},
			Class: class,
		})
	}
	return Menu{Entries: entries}
}

// matchEntry returns the first entry whose value equals current. An unset
// current value is treated as the empty string.
func matchEntry(entries []MenuEntry, current model.Value) int {
	if current.IsUnset() {
		current = model.StringValue("")
	}
	for idx, entry := range entries {
		value := entry.Value
		if value.IsUnset() {
			value = model.StringValue("")
		}
		if value.Equal(current) {
			return idx
		}
	}
	return -1
}

// SelectableCount returns the number of entries a user can pick.
func (t Tree) SelectableCount() int {
	return len(t.Menu.Entries)
}

// Texts returns the entry texts in menu order.
func (t Tree) Texts() []string {
	out := make([]string, len(t.Menu.Entries))
	for idx, entry := range t.Menu.Entries {
		out[idx] = entry.Text
	}
	return out
}

// Entry returns the entry at index.
func (t Tree) Entry(index int) (MenuEntry, bool) {
	if index < 0 || index >= len(t.Menu.Entries) {
		return MenuEntry{}, false
	}
	return t.Menu.Entries[index], true
}
