package model

// Option is one selectable record: Value is returned on selection, Text is
// shown in the menu.
type Option struct {
	Value Value  `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// Entry describes a rendered menu entry. Index is the position within the
// menu, so the placeholder sentinel (when present) is entry 0.
type Entry struct {
	Index       int    `json:"index"`
	Value       Value  `json:"value"`
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// ChangeEvent accompanies every change notification.
type ChangeEvent struct {
	// ControlID is the id of the control that emitted the event.
	ControlID string
	// Node is the menu entry that was chosen.
	Node Entry
	// Source names the renderer or host that produced the interaction
	// ("html", "tui", ...).
	Source string
	// Raw is the host's native event, passed through untouched.
	Raw any
}

// ChangeFunc receives the chosen value. It runs once per discrete selection.
type ChangeFunc func(selected Value, event ChangeEvent)

// Config is the complete, caller-owned description of a select control.
type Config struct {
	// ID must be unique within the containing document. Label, input and
	// helper text ids are derived from it.
	ID       string
	Disabled bool
	Error    bool
	// HelperText is shown below the control. HTML renderers accept a small
	// inline subset of markup; everything else is stripped.
	HelperText string
	// Label is shown above the control. No label is rendered when empty.
	Label       string
	Placeholder string
	Required    bool
	// Value is the current selection. The empty string (or an unset Value)
	// means no option is selected and matches the placeholder sentinel.
	Value    Value
	Items    []Option
	OnChange ChangeFunc
}

// PlaceholderCollision reports whether a placeholder is configured while an
// item also uses the empty-string value. Both entries then share the same
// value and the first one (the placeholder) wins when resolving the display.
func (c Config) PlaceholderCollision() bool {
	if c.Placeholder == "" {
		return false
	}
	for _, item := range c.Items {
		if item.Value.IsEmpty() {
			return true
		}
	}
	return false
}
