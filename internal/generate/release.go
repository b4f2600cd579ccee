package generate

import (
	"strings"

	"github.com/specialistvlad/wheelci/internal/workflow"
)

const (
	sdistJobID   = "sdist"
	releaseJobID = "release"
)

// sdistJob packages the source tree. Its artifact joins the wheels so the
// release publishes both.
func sdistJob(o options) workflow.Job {
	args := []string{"--out", "dist"}
	if o.manifest != "" {
		args = append(args, "--manifest-path", o.manifest)
	}

	return workflow.Job{
		ID:     sdistJobID,
		RunsOn: "ubuntu-latest",
		Steps: []workflow.Step{
			{Uses: actionCheckout},
			{
				Name: "Build sdist",
				Uses: actionMaturin,
				With: []workflow.Param{
					workflow.P("command", "sdist"),
					workflow.P("args", strings.Join(args, " ")),
				},
			},
			{
				Name: "Upload sdist",
				Uses: actionUploadArtifact,
				With: []workflow.Param{workflow.P("name", wheelsArtifact), workflow.P("path", "dist")},
			},
		},
	}
}

// releaseJob publishes on tag pushes once every job in needs has finished.
// The wasm steps attach the emscripten wheels to the GitHub release.
func releaseJob(needs []string, wasm bool) workflow.Job {
	steps := []workflow.Step{
		{
			Uses: actionDownloadArtifact,
			With: []workflow.Param{workflow.P("name", wheelsArtifact)},
		},
		{
			Name: "Publish to PyPI",
			Uses: actionMaturin,
			Env:  []workflow.Param{workflow.P("MATURIN_PYPI_TOKEN", "${{ secrets.PYPI_API_TOKEN }}")},
			With: []workflow.Param{
				workflow.P("command", "upload"),
				workflow.P("args", "--skip-existing *"),
			},
		},
	}
	if wasm {
		steps = append(steps,
			workflow.Step{
				Uses: actionDownloadArtifact,
				With: []workflow.Param{workflow.P("name", wasmArtifact), workflow.P("path", "wasm")},
			},
			workflow.Step{
				Name: "Upload to GitHub Release",
				Uses: actionGHRelease,
				With: []workflow.Param{
					workflow.P("files", script("wasm/*.whl")),
					workflow.P("prerelease", "${{ contains(github.ref, 'alpha') || contains(github.ref, 'beta') }}"),
				},
			},
		)
	}

	if needs == nil {
		needs = []string{}
	}
	return workflow.Job{
		ID:     releaseJobID,
		Name:   "Release",
		RunsOn: "ubuntu-latest",
		If:     "startsWith(github.ref, 'refs/tags/')",
		Needs:  needs,
		Steps:  steps,
	}
}
