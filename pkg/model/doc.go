// Package model defines the configuration consumed by the select control and
// its renderers. A Config is a caller-owned snapshot: renderers derive their
// output from it on every call and never write back to it. Option values are
// typed (`string` or number) through Value so a selection round-trips to the
// caller with the same kind it was declared with, including when the choice
// arrives as a submitted HTML form string. Selection is reported through
// ChangeFunc; the control never updates Config.Value on its own.
package model
