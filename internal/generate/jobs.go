package generate

import (
	"fmt"

	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/workflow"
)

// runnerImage maps a platform to its hosted runner. Linux and Emscripten
// share the Ubuntu image.
func runnerImage(p model.Platform) string {
	switch p {
	case model.Linux, model.Emscripten:
		return "ubuntu-latest"
	case model.Windows:
		return "windows-latest"
	case model.MacOS:
		return "macos-latest"
	default:
		panic(fmt.Sprintf("generate: no runner for platform %s", p))
	}
}

// targetMatrix is the ordered list of architectures built in parallel for a
// platform. Emscripten has a single fixed target and no matrix.
func targetMatrix(p model.Platform) []string {
	switch p {
	case model.Linux:
		return []string{"x86_64", "x86", "aarch64", "armv7", "s390x", "ppc64le"}
	case model.Windows:
		return []string{"x64", "x86"}
	case model.MacOS:
		return []string{"x86_64", "aarch64"}
	default:
		return nil
	}
}

func buildJob(p model.Platform, o options) workflow.Job {
	return workflow.Job{
		ID:     p.String(),
		RunsOn: runnerImage(p),
		Matrix: targetMatrix(p),
		Steps:  assembleSteps(p, o),
	}
}
