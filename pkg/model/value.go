package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKind identifies the concrete type carried by a Value.
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindString
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "unset"
	}
}

// Value is an option identifier: either a string or a number. The zero Value
// is unset, which renderers treat the same as the empty string.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// StringValue wraps s as a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue wraps f as a numeric Value.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// IntValue wraps i as a numeric Value.
func IntValue(i int64) Value {
	return NumberValue(float64(i))
}

// Kind reports the concrete type carried by v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsUnset reports whether v was never assigned.
func (v Value) IsUnset() bool {
	return v.kind == KindUnset
}

// IsEmpty reports whether v represents "no option selected": either unset or
// the empty string.
func (v Value) IsEmpty() bool {
	return v.kind == KindUnset || (v.kind == KindString && v.str == "")
}

// Number returns the numeric payload and whether v is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Equal compares kind and payload. A string "2" never equals the number 2.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	default:
		return true
	}
}

// String renders the wire form used in HTML option values and CLI output.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	default:
		return ""
	}
}

// Interface returns the payload as a plain Go value (string, float64 or nil).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

// ParseValue interprets raw according to kind. KindUnset yields the unset
// Value regardless of raw.
func ParseValue(raw string, kind ValueKind) (Value, error) {
	switch kind {
	case KindString:
		return StringValue(raw), nil
	case KindNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("model: parse number %q: %w", raw, err)
		}
		return NumberValue(f), nil
	default:
		return Value{}, nil
	}
}

// GuessValue returns a number when raw parses as one and a string otherwise.
// It is meant for loosely typed inputs such as CLI flags.
func GuessValue(raw string) Value {
	if raw == "" {
		return StringValue("")
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return NumberValue(f)
	}
	return StringValue(raw)
}

// MarshalJSON encodes v as a JSON string, number or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(formatNumber(v.num)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts JSON strings, numbers and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = Value{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("model: decode value: %w", err)
		}
		*v = StringValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return fmt.Errorf("model: value must be a string or number: %w", err)
	}
	*v = NumberValue(f)
	return nil
}

// MarshalYAML encodes v as a YAML scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// UnmarshalYAML keeps the scalar's resolved tag: `!!int` and `!!float` become
// numbers, everything else is kept as a string.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("model: value at line %d must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Value{}
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("model: decode value at line %d: %w", node.Line, err)
		}
		*v = NumberValue(f)
	default:
		*v = StringValue(node.Value)
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
