// Package theme resolves the two visual tokens the select control consumes
// from a go-theme manifest, selection or renderer configuration. It never
// defines themes of its own beyond neutral fallbacks.
package theme

import (
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// Token keys looked up in theme manifests.
const (
	KeyBorder     = "grey.200"
	KeyForeground = "common.black"
)

// Fallback values used when a theme does not define a token.
const (
	DefaultBorderColor = "#eeeeee"
	DefaultCommonBlack = "#000000"
)

// Tokens carries the resolved colours.
type Tokens struct {
	BorderColor string
	CommonBlack string
}

// Defaults returns the fallback tokens.
func Defaults() Tokens {
	return Tokens{
		BorderColor: DefaultBorderColor,
		CommonBlack: DefaultCommonBlack,
	}
}

// WithFallbacks fills empty tokens from Defaults.
func (t Tokens) WithFallbacks() Tokens {
	def := Defaults()
	if strings.TrimSpace(t.BorderColor) == "" {
		t.BorderColor = def.BorderColor
	}
	if strings.TrimSpace(t.CommonBlack) == "" {
		t.CommonBlack = def.CommonBlack
	}
	return t
}

// FromMap picks the control's tokens out of a flat token map.
func FromMap(tokens map[string]string) Tokens {
	return Tokens{
		BorderColor: strings.TrimSpace(tokens[KeyBorder]),
		CommonBlack: strings.TrimSpace(tokens[KeyForeground]),
	}.WithFallbacks()
}

// FromRendererConfig reads tokens from a resolved renderer configuration. A
// nil configuration yields the defaults.
func FromRendererConfig(cfg *gotheme.RendererConfig) Tokens {
	if cfg == nil {
		return Defaults()
	}
	return FromMap(cfg.Tokens)
}

// FromSelection merges the manifest's base tokens with the selected variant's
// overrides.
func FromSelection(sel *gotheme.Selection) Tokens {
	return FromMap(SelectionTokens(sel))
}

// SelectionTokens returns the flattened token map of a selection.
func SelectionTokens(sel *gotheme.Selection) map[string]string {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	merged := make(map[string]string, len(sel.Manifest.Tokens))
	maps.Copy(merged, sel.Manifest.Tokens)
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		maps.Copy(merged, variant.Tokens)
	}
	return merged
}

// RendererConfig converts a selection into the configuration renderers take.
func RendererConfig(sel *gotheme.Selection) *gotheme.RendererConfig {
	if sel == nil {
		return nil
	}
	tokens := SelectionTokens(sel)
	return &gotheme.RendererConfig{
		Theme:   sel.Theme,
		Variant: sel.Variant,
		Tokens:  tokens,
		CSSVars: CSSVars(tokens),
	}
}

// CSSVars derives custom property names from token keys: "grey.200" becomes
// "--grey-200".
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.NewReplacer(".", "-", " ", "-").Replace(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		out["--"+name] = value
	}
	return out
}

// unsafeCSS lists characters that could close a declaration, the rule or the
// surrounding <style> element.
const unsafeCSS = "<>{};\\"

// CSSVarsStyle renders vars as a sorted `:root` block. Declarations whose
// name or value contains markup or CSS delimiters are dropped, so the result
// can be embedded in a <style> element verbatim.
func CSSVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if strings.ContainsAny(key, unsafeCSS) || strings.ContainsAny(value, unsafeCSS) {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// DecodeManifest reads a YAML theme manifest holding a name, version, base
// tokens and per-variant token overrides.
func DecodeManifest(r io.Reader) (*gotheme.Manifest, error) {
	var raw manifestFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("theme: decode manifest: %w", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("theme: manifest name is required")
	}
	manifest := &gotheme.Manifest{
		Name:    raw.Name,
		Version: raw.Version,
		Tokens:  raw.Tokens,
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = gotheme.Variant{Tokens: variant.Tokens}
		}
	}
	return manifest, nil
}

// Select builds a selection for variant. An unknown non-empty variant is an
// error; an empty variant selects the base tokens.
func Select(manifest *gotheme.Manifest, variant string) (*gotheme.Selection, error) {
	if manifest == nil {
		return nil, fmt.Errorf("theme: manifest is nil")
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme: variant %q not defined by %q", variant, manifest.Name)
		}
	}
	return &gotheme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
