package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formselect/pkg/model"
)

// MustLoadConfig loads a JSON fixture into a select configuration.
func MustLoadConfig(t *testing.T, path string) model.Config {
	t.Helper()

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

type configFixture struct {
	ID          string         `json:"id"`
	Disabled    bool           `json:"disabled"`
	Error       bool           `json:"error"`
	HelperText  string         `json:"helperText"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder"`
	Required    bool           `json:"required"`
	Value       model.Value    `json:"value"`
	Items       []model.Option `json:"items"`
}

// LoadConfig reads a JSON fixture into a Config, returning an error for
// callers managing setup outside of *testing.T. OnChange is left nil.
func LoadConfig(path string) (model.Config, error) {
	if path == "" {
		return model.Config{}, errors.New("testsupport: config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("testsupport: read config: %w", err)
	}
	var raw configFixture
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Config{}, fmt.Errorf("testsupport: unmarshal config: %w", err)
	}
	return model.Config{
		ID:          raw.ID,
		Disabled:    raw.Disabled,
		Error:       raw.Error,
		HelperText:  raw.HelperText,
		Label:       raw.Label,
		Placeholder: raw.Placeholder,
		Required:    raw.Required,
		Value:       raw.Value,
		Items:       raw.Items,
	}, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
