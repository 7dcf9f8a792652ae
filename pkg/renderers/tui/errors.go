package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoEntries is returned when the control has nothing to choose from.
	ErrNoEntries = errors.New("tui: control has no menu entries")
)
