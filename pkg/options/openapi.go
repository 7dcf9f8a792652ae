package options

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formselect/pkg/model"
)

// ErrNoOptions is returned when a schema carries no enum values.
var ErrNoOptions = errors.New("options: no options defined")

// Extension keys holding display names for enum values, in lookup order.
var enumNameExtensions = []string{"x-enumNames", "x-enum-names", "x-enum-varnames"}

// FromOpenAPI builds option records from the enum of a component schema.
// name is either a schema name ("Size") or a schema property ("Shirt.size").
// Display texts come from an enum name extension when it matches the enum's
// length, otherwise from the enum values themselves.
func FromOpenAPI(ctx context.Context, data []byte, name string) ([]model.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schemaName, property, _ := strings.Cut(strings.TrimSpace(name), ".")
	if schemaName == "" {
		return nil, fmt.Errorf("options: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("options: load openapi document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("options: document has no components")
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("options: schema %q not found", schemaName)
	}
	schema := ref.Value
	if property != "" {
		prop, ok := schema.Properties[property]
		if !ok || prop == nil || prop.Value == nil {
			return nil, fmt.Errorf("options: property %q not found on %q", property, schemaName)
		}
		schema = prop.Value
	}
	if schema.Items != nil && schema.Items.Value != nil && len(schema.Enum) == 0 {
		schema = schema.Items.Value
	}

	return enumOptions(schema, name)
}

func enumOptions(schema *openapi3.Schema, name string) ([]model.Option, error) {
	if len(schema.Enum) == 0 {
		return nil, fmt.Errorf("%w: %q has no enum", ErrNoOptions, name)
	}
	names := enumNames(schema.Extensions, len(schema.Enum))

	items := make([]model.Option, 0, len(schema.Enum))
	for idx, raw := range schema.Enum {
		value, err := enumValue(raw)
		if err != nil {
			return nil, fmt.Errorf("options: %s enum[%d]: %w", name, idx, err)
		}
		text := value.String()
		if names != nil && names[idx] != "" {
			text = names[idx]
		}
		items = append(items, model.Option{Value: value, Text: text})
	}
	return items, nil
}

func enumNames(extensions map[string]any, size int) []string {
	for _, key := range enumNameExtensions {
		raw, ok := extensions[key].([]any)
		if !ok || len(raw) != size {
			continue
		}
		out := make([]string, size)
		for idx, entry := range raw {
			if text, ok := entry.(string); ok {
				out[idx] = strings.TrimSpace(text)
			}
		}
		return out
	}
	return nil
}

func enumValue(raw any) (model.Value, error) {
	switch v := raw.(type) {
	case string:
		return model.StringValue(v), nil
	case float64:
		return model.NumberValue(v), nil
	case float32:
		return model.NumberValue(float64(v)), nil
	case int:
		return model.IntValue(int64(v)), nil
	case int64:
		return model.IntValue(v), nil
	case nil:
		return model.StringValue(""), nil
	default:
		return model.Value{}, fmt.Errorf("unsupported enum value %T", raw)
	}
}
