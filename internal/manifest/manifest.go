// Package manifest reads the deployed application's pyproject manifest.
package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is the subset of pyproject.toml the installer cares about.
type Manifest struct {
	Tool struct {
		Poetry struct {
			Name         string         `toml:"name"`
			Version      string         `toml:"version"`
			Description  string         `toml:"description"`
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Name returns the declared project name.
func (m *Manifest) Name() string {
	return m.Tool.Poetry.Name
}

// Version returns the declared project version.
func (m *Manifest) Version() string {
	return m.Tool.Poetry.Version
}

// System abstracts the filesystem read needed to load a manifest.
type System interface {
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Load reads and parses the manifest at path. A manifest without a
// [tool.poetry] name is rejected; the dependency installer needs a
// poetry project to resolve.
func Load(sys System, path string) (*Manifest, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Tool.Poetry.Name == "" {
		return nil, fmt.Errorf("%s has no tool.poetry.name", path)
	}
	return &m, nil
}
