package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog layout
type File struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// LoadFile reads a catalog from a .json, .yaml or .yml file and validates it
func LoadFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := sonic.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}

	if err := Validate(f.Categories); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

// Load returns the catalog from path, or the built-in one when path is empty
func Load(path string) ([]Category, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
