package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formselect/pkg/model"
)

type optionsFile struct {
	Items []model.Option `yaml:"items"`
}

// LoadFile reads option records from a YAML or JSON file on disk.
func LoadFile(path string) ([]model.Option, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("options: path is required")
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load reads option records from path within fsys. The document is either a
// bare list of {value, text} records or a mapping with an `items` list. An
// empty document yields no options. Text is kept as written, empty included.
func Load(fsys fs.FS, path string) ([]model.Option, error) {
	if fsys == nil {
		return nil, errors.New("options: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("options: read %s: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("options: %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes option records from YAML or JSON bytes.
func Parse(data []byte) ([]model.Option, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(root.Content) == 0 {
		return []model.Option{}, nil
	}
	doc := root.Content[0]

	var items []model.Option
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	case yaml.MappingNode:
		var file optionsFile
		if err := doc.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		items = file.Items
	default:
		return nil, fmt.Errorf("expected a list or a mapping with items, got line %d", doc.Line)
	}
	if items == nil {
		items = []model.Option{}
	}
	return items, nil
}
