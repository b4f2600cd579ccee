package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/wheelci/internal/ctxlog"
	"github.com/specialistvlad/wheelci/internal/model"
)

const pyprojectFile = "pyproject.toml"

// Metadata is the resolved description of a project.
type Metadata struct {
	// Name is the distribution name used when installing built wheels.
	Name   string
	Bridge model.Bridge
	// Sdist is true when a pyproject.toml exists, which is what a source
	// distribution build requires.
	Sdist bool
	// ManifestPath is the Cargo.toml that was read.
	ManifestPath string
}

// Resolver resolves project metadata relative to a working directory.
type Resolver struct {
	WorkDir string
}

// NewResolver returns a resolver rooted at workDir.
func NewResolver(workDir string) *Resolver {
	return &Resolver{WorkDir: workDir}
}

// Resolve reads the Cargo manifest at manifestPath (Cargo.toml in the working
// directory when empty) and the pyproject.toml beside it, falling back to
// the one in the working directory.
func (r *Resolver) Resolve(ctx context.Context, manifestPath string) (*Metadata, error) {
	logger := ctxlog.FromContext(ctx)

	if manifestPath == "" {
		manifestPath = r.defaultManifest(ctx)
	}
	cargoPath := r.abs(manifestPath)
	logger.Debug("Resolving project metadata.", "manifest", cargoPath)

	cargo, err := readCargoManifest(cargoPath)
	if err != nil {
		return nil, err
	}

	pyPath := filepath.Join(filepath.Dir(cargoPath), pyprojectFile)
	if _, err := os.Stat(pyPath); err != nil {
		pyPath = r.abs(pyprojectFile)
	}
	py, err := readPyProject(pyPath)
	if err != nil {
		return nil, err
	}
	if py != nil {
		logger.Debug("Found pyproject.", "path", pyPath)
	}

	bridge, err := detectBridge(cargo, py.bindings())
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", cargoPath, err)
	}

	meta := &Metadata{
		Name:         projectName(cargo, py),
		Bridge:       bridge,
		Sdist:        py != nil,
		ManifestPath: cargoPath,
	}
	logger.Debug("Resolved project metadata.", "name", meta.Name, "bridge", meta.Bridge.String(), "sdist", meta.Sdist)
	return meta, nil
}

// defaultManifest honours `[tool.maturin] manifest-path` from a pyproject in
// the working directory before falling back to Cargo.toml.
func (r *Resolver) defaultManifest(ctx context.Context) string {
	py, err := readPyProject(r.abs(pyprojectFile))
	if err != nil || py == nil || py.Tool.Maturin.ManifestPath == "" {
		return model.DefaultManifestPath
	}
	ctxlog.FromContext(ctx).Debug("Using manifest path from pyproject.", "manifest", py.Tool.Maturin.ManifestPath)
	return py.Tool.Maturin.ManifestPath
}

func (r *Resolver) abs(path string) string {
	if filepath.IsAbs(path) || r.WorkDir == "" {
		return path
	}
	return filepath.Join(r.WorkDir, path)
}

// projectName prefers the pyproject name, then the library name, then the
// package name with dashes turned into underscores.
func projectName(cargo *cargoManifest, py *pyProject) string {
	if name := py.projectName(); name != "" {
		return name
	}
	if cargo.Lib != nil && cargo.Lib.Name != "" {
		return cargo.Lib.Name
	}
	return strings.ReplaceAll(cargo.Package.Name, "-", "_")
}
