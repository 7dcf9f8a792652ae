// Package control composes the select control's visual tree from a
// model.Config and dispatches selections back to the caller.
//
// Build is a pure function: the same configuration always yields the same
// Tree, and nothing is remembered between calls. The tree is a set of
// independent parts (container, label, input surface, menu, helper text)
// that renderers turn into HTML, terminal output or interactive prompts.
//
// Select never updates the configuration. It reports the chosen entry
// through Config.OnChange; the new value only takes effect once the caller
// passes it back in as Config.Value on the next Build.
package control
