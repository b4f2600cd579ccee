package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/wheelci/internal/config"
	"github.com/specialistvlad/wheelci/internal/ctxlog"
	"github.com/specialistvlad/wheelci/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL profile loader. environ, in the "KEY=value"
// form of os.Environ, becomes the `env` variable available to expressions.
func NewLoader(environ []string) *Loader {
	return &Loader{evalCtx: newEvalContext(environ)}
}

// Load parses every .hcl file under paths. Files are read in the order the
// paths are given, and a directory is walked in lexical order. Settings from
// later generate blocks override earlier ones attribute by attribute. A path
// that does not exist is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if len(root.Generate) > 1 {
			return nil, fmt.Errorf("HCL file %s has %d generate blocks, at most one is allowed", file, len(root.Generate))
		}

		model.Files = append(model.Files, file)
		for _, block := range root.Generate {
			if model.Generate == nil {
				model.Generate = &config.Generate{}
			}
			model.Generate.Merge(translateGenerate(block))
		}
	}

	logger.Debug("HCL loading complete.", "files", len(model.Files), "has_generate", model.Generate != nil)
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing profile path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFiles(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
