package control

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formselect/pkg/model"
)

var (
	// ErrDisabled is returned when a selection targets a disabled control.
	ErrDisabled = errors.New("control: control is disabled")
	// ErrNoSuchEntry is returned when a selection targets an entry the menu
	// does not contain.
	ErrNoSuchEntry = errors.New("control: no such menu entry")
)

// Interaction describes where a selection came from.
type Interaction struct {
	// Source names the host that observed the interaction.
	Source string
	// Raw is the host's native event.
	Raw any
}

// Select reports the choice of entry index to cfg.OnChange. The callback runs
// exactly once on success and never when an error is returned. A nil callback
// makes Select a no-op.
func Select(cfg model.Config, tree Tree, index int, in Interaction) error {
	if cfg.Disabled {
		return ErrDisabled
	}
	entry, ok := tree.Entry(index)
	if !ok {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchEntry, index, tree.SelectableCount())
	}
	if cfg.OnChange == nil {
		return nil
	}
	cfg.OnChange(entry.Value, model.ChangeEvent{
		ControlID: cfg.ID,
		Node:      entry.Entry,
		Source:    in.Source,
		Raw:       in.Raw,
	})
	return nil
}

// Resolve finds the first entry whose wire value equals submitted. Values of
// different kinds that share a wire form ("2" and 2) resolve to whichever
// comes first in the menu.
func Resolve(tree Tree, submitted string) (MenuEntry, bool) {
	for _, entry := range tree.Menu.Entries {
		if entry.Value.String() == submitted {
			return entry, true
		}
	}
	return MenuEntry{}, false
}

// SelectSubmitted maps a submitted form value back to its typed entry and
// dispatches it through Select.
func SelectSubmitted(cfg model.Config, tree Tree, submitted string, in Interaction) error {
	entry, ok := Resolve(tree, submitted)
	if !ok {
		return fmt.Errorf("%w: value %q", ErrNoSuchEntry, submitted)
	}
	return Select(cfg, tree, entry.Index, in)
}
