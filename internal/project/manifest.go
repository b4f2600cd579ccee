package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// cargoManifest is the subset of Cargo.toml the resolver reads.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Lib *struct {
		Name      string   `toml:"name"`
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
	Dependencies map[string]toml.Primitive `toml:"dependencies"`

	deps map[string]dependency
	// hasLib is true when the crate builds a library, either declared in a
	// [lib] table or implied by src/lib.rs.
	hasLib bool
}

// dependency is a Cargo dependency in either its short (`"0.20"`) or table
// form.
type dependency struct {
	Version  string   `toml:"version"`
	Features []string `toml:"features"`
}

func (d dependency) hasFeature(name string) bool {
	for _, f := range d.Features {
		if f == name {
			return true
		}
	}
	return false
}

func readCargoManifest(path string) (*cargoManifest, error) {
	var m cargoManifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cargo manifest %s: %w", path, err)
	}

	m.deps = make(map[string]dependency, len(m.Dependencies))
	for name, prim := range m.Dependencies {
		var dep dependency
		if err := md.PrimitiveDecode(prim, &dep.Version); err != nil {
			if err := md.PrimitiveDecode(prim, &dep); err != nil {
				return nil, fmt.Errorf("invalid dependency %q in %s: %w", name, path, err)
			}
		}
		m.deps[name] = dep
	}

	if m.Package.Name == "" {
		return nil, fmt.Errorf("cargo manifest %s has no [package] name", path)
	}

	m.hasLib = m.Lib != nil
	if !m.hasLib {
		_, err := os.Stat(filepath.Join(filepath.Dir(path), "src", "lib.rs"))
		m.hasLib = err == nil
	}
	return &m, nil
}

func (m *cargoManifest) dependency(name string) (dependency, bool) {
	d, ok := m.deps[name]
	return d, ok
}

func (m *cargoManifest) isCdylib() bool {
	if m.Lib == nil {
		return false
	}
	for _, t := range m.Lib.CrateType {
		if t == "cdylib" {
			return true
		}
	}
	return false
}

// pyProject is the subset of pyproject.toml the resolver reads.
type pyProject struct {
	Project *struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Maturin struct {
			Bindings     string `toml:"bindings"`
			ManifestPath string `toml:"manifest-path"`
		} `toml:"maturin"`
	} `toml:"tool"`
}

// readPyProject returns nil without error when the file does not exist.
func readPyProject(path string) (*pyProject, error) {
	var p pyProject
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &p, nil
}

func (p *pyProject) projectName() string {
	if p == nil || p.Project == nil {
		return ""
	}
	return strings.TrimSpace(p.Project.Name)
}

func (p *pyProject) bindings() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Tool.Maturin.Bindings)
}
