package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/options"
	"github.com/goliatone/go-formselect/pkg/render"
	"github.com/goliatone/go-formselect/pkg/styles"
	"github.com/goliatone/go-formselect/pkg/theme"
)

// controlFlags collects the control configuration shared by every command.
type controlFlags struct {
	id          string
	label       string
	placeholder string
	helper      string
	value       string
	valueSet    bool
	required    bool
	errorState  bool
	disabled    bool

	itemsFile   string
	openapiFile string
	schema      string

	themeFile   string
	variant     string
	classesFile string
}

func (f *controlFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.id, "id", "", "control id (required, unique within the document)")
	flags.StringVar(&f.label, "label", "", "label shown above the control")
	flags.StringVar(&f.placeholder, "placeholder", "", "placeholder entry text")
	flags.StringVar(&f.helper, "helper", "", "helper text shown below the control")
	flags.StringVar(&f.value, "value", "", "current value; matched against item values first, otherwise numeric strings become numbers")
	flags.BoolVar(&f.required, "required", false, "mark the control as required")
	flags.BoolVar(&f.errorState, "error", false, "render the error state")
	flags.BoolVar(&f.disabled, "disabled", false, "disable the control")
	flags.StringVar(&f.itemsFile, "items", "", "YAML or JSON file with {value, text} records")
	flags.StringVar(&f.openapiFile, "openapi", "", "OpenAPI document to read enum options from")
	flags.StringVar(&f.schema, "schema", "", "schema (or Schema.property) holding the enum in --openapi")
	flags.StringVar(&f.themeFile, "theme", "", "YAML theme manifest")
	flags.StringVar(&f.variant, "variant", "", "theme variant")
	flags.StringVar(&f.classesFile, "classes", "", "YAML class name overrides")
}

func (f *controlFlags) config(ctx context.Context) (model.Config, error) {
	if f.id == "" {
		return model.Config{}, errors.New("--id is required")
	}
	items, err := f.items(ctx)
	if err != nil {
		return model.Config{}, err
	}

	cfg := model.Config{
		ID:          f.id,
		Disabled:    f.disabled,
		Error:       f.errorState,
		HelperText:  f.helper,
		Label:       f.label,
		Placeholder: f.placeholder,
		Required:    f.required,
		Items:       items,
	}
	if f.valueSet {
		cfg.Value = resolveValue(cfg, f.value)
	}
	if cfg.PlaceholderCollision() {
		log.Warn("placeholder shares the empty value with an option; the placeholder is shown for an empty value",
			"id", cfg.ID, "placeholder", cfg.Placeholder)
	}
	log.Debug("control configured", "id", cfg.ID, "items", len(cfg.Items), "value", cfg.Value.String())
	return cfg, nil
}

// resolveValue takes the typed value of the first entry whose wire form is raw,
// so "007" stays a string when an item carries it. Unknown values are guessed.
func resolveValue(cfg model.Config, raw string) model.Value {
	if entry, ok := control.Resolve(control.Build(cfg), raw); ok {
		return entry.Value
	}
	return model.GuessValue(raw)
}

func (f *controlFlags) items(ctx context.Context) ([]model.Option, error) {
	switch {
	case f.itemsFile != "" && f.openapiFile != "":
		return nil, errors.New("--items and --openapi are mutually exclusive")
	case f.itemsFile != "":
		return options.LoadFile(f.itemsFile)
	case f.openapiFile != "":
		if f.schema == "" {
			return nil, errors.New("--schema is required with --openapi")
		}
		data, err := os.ReadFile(f.openapiFile)
		if err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
		return options.FromOpenAPI(ctx, data, f.schema)
	default:
		return nil, nil
	}
}

func (f *controlFlags) renderOptions() (render.RenderOptions, error) {
	var opts render.RenderOptions

	if f.themeFile != "" {
		file, err := os.Open(f.themeFile)
		if err != nil {
			return opts, fmt.Errorf("open theme: %w", err)
		}
		defer file.Close()

		manifest, err := theme.DecodeManifest(file)
		if err != nil {
			return opts, err
		}
		selection, err := theme.Select(manifest, f.variant)
		if err != nil {
			return opts, err
		}
		opts.Theme = theme.RendererConfig(selection)
		log.Debug("theme selected", "theme", selection.Theme, "variant", selection.Variant)
	}

	if f.classesFile != "" {
		file, err := os.Open(f.classesFile)
		if err != nil {
			return opts, fmt.Errorf("open classes: %w", err)
		}
		defer file.Close()

		classes, err := styles.Decode(file)
		if err != nil {
			return opts, err
		}
		opts.Classes = classes
	}
	return opts, nil
}
