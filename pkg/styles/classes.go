// Package styles holds the class names the select control binds to its
// visual parts. The rules behind the names live in the host stylesheet.
package styles

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default class names.
const (
	DefaultFormControl = "formControl"
	DefaultLabel       = "label"
	DefaultInput       = "input"
	DefaultMenuItem    = "menuItem"
)

// reservedPrefix marks classes the renderers emit themselves.
const reservedPrefix = "fs-"

// Classes maps each visual part to its class list.
type Classes struct {
	FormControl string `yaml:"formControl" json:"formControl"`
	Label       string `yaml:"label" json:"label"`
	Input       string `yaml:"input" json:"input"`
	MenuItem    string `yaml:"menuItem" json:"menuItem"`
}

// Defaults returns the stock class names.
func Defaults() Classes {
	return Classes{
		FormControl: DefaultFormControl,
		Label:       DefaultLabel,
		Input:       DefaultInput,
		MenuItem:    DefaultMenuItem,
	}
}

// Merge returns c with every non-empty override applied. Overrides are
// sanitised first, so an override made only of reserved classes is ignored.
func (c Classes) Merge(overrides Classes) Classes {
	if v := SanitizeClassList(overrides.FormControl); v != "" {
		c.FormControl = v
	}
	if v := SanitizeClassList(overrides.Label); v != "" {
		c.Label = v
	}
	if v := SanitizeClassList(overrides.Input); v != "" {
		c.Input = v
	}
	if v := SanitizeClassList(overrides.MenuItem); v != "" {
		c.MenuItem = v
	}
	return c
}

// IsZero reports whether no class is set.
func (c Classes) IsZero() bool {
	return c == Classes{}
}

// Decode reads a YAML (or JSON) class map from r.
func Decode(r io.Reader) (Classes, error) {
	var out Classes
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if err == io.EOF {
			return Classes{}, nil
		}
		return Classes{}, fmt.Errorf("styles: decode classes: %w", err)
	}
	return out, nil
}

// SanitizeClassList normalises whitespace and drops classes carrying the
// reserved prefix.
func SanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, reservedPrefix) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
