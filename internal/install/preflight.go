package install

import (
	"github.com/quarterdeck-io/quartermaster/internal/manifest"
)

// validateManifest confirms the project manifest parses as a poetry
// project before the dependency installer depends on it.
func (inst *installer) validateManifest(path string) error {
	_, err := manifest.Load(inst.sys, path)
	return err
}
