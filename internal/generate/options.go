package generate

import (
	"path/filepath"

	"github.com/specialistvlad/wheelci/internal/model"
)

// options is everything a platform job depends on besides the platform.
type options struct {
	bridge      model.Bridge
	projectName string
	pytest      bool
	zig         bool
	// manifest is the override path, empty when the default is used.
	manifest string
	// setupRuntime is true when an interpreter must be installed on the
	// runner before building.
	setupRuntime bool
}

func newOptions(in Input) options {
	manifest, _ := in.Config.ManifestOverride()
	return options{
		bridge:       in.Bridge,
		projectName:  in.ProjectName,
		pytest:       in.Config.Pytest,
		zig:          in.Config.Zig,
		manifest:     manifest,
		setupRuntime: in.Config.Pytest || model.RequiresHostedRuntime(in.Bridge),
	}
}

// chdir is the prefix that moves a test runner into the manifest directory.
// A manifest in the working directory needs no prefix.
func (o options) chdir() string {
	if o.manifest == "" {
		return ""
	}
	dir := filepath.Dir(o.manifest)
	if dir == "." {
		return ""
	}
	return "cd " + dir + " && "
}
