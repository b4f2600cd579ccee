package generate

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/workflow"
)

// Pinned third-party actions.
const (
	actionCheckout         = "actions/checkout@v3"
	actionSetupPython      = "actions/setup-python@v4"
	actionSetupNode        = "actions/setup-node@v3"
	actionSetupEmsdk       = "mymindstorm/setup-emsdk@v12"
	actionMaturin          = "PyO3/maturin-action@v1"
	actionUploadArtifact   = "actions/upload-artifact@v3"
	actionDownloadArtifact = "actions/download-artifact@v3"
	actionRunOnArch        = "uraimo/run-on-arch-action@v2.5.0"
	actionGHRelease        = "softprops/action-gh-release@v1"
)

const (
	pythonVersion  = "3.10"
	nodeVersion    = "18"
	wheelsArtifact = "wheels"
	wasmArtifact   = "wasm-wheels"
	matrixTarget   = "${{ matrix.target }}"
	wasmTarget     = "wasm32-unknown-emscripten"
)

// assembleSteps returns the ordered steps of one platform job: checkout,
// optional interpreter setup, the emscripten bootstrap, build, upload and
// optional tests.
func assembleSteps(p model.Platform, o options) []workflow.Step {
	steps := []workflow.Step{{Uses: actionCheckout}}

	if o.setupRuntime {
		steps = append(steps, setupPythonStep(p))
	}
	if p == model.Emscripten {
		steps = append(steps, emscriptenBootstrapSteps()...)
	}
	steps = append(steps, buildStep(p, o), uploadStep(p))
	if o.pytest {
		steps = append(steps, testSteps(p, o)...)
	}
	return steps
}

func setupPythonStep(p model.Platform) workflow.Step {
	with := []workflow.Param{workflow.Q("python-version", pythonVersion)}
	if p == model.Windows {
		with = append(with, workflow.P("architecture", matrixTarget))
	}
	return workflow.Step{Uses: actionSetupPython, With: with}
}

func emscriptenBootstrapSteps() []workflow.Step {
	return []workflow.Step{
		{Run: "pip install pyodide-build"},
		{
			Shell: "bash",
			Run:   "echo EMSCRIPTEN_VERSION=$(pyodide config get emscripten_version) >> $GITHUB_ENV",
		},
		{
			Uses: actionSetupEmsdk,
			With: []workflow.Param{
				workflow.P("version", "${{ env.EMSCRIPTEN_VERSION }}"),
				workflow.P("actions-cache-folder", "emsdk-cache"),
			},
		},
	}
}

func buildStep(p model.Platform, o options) workflow.Step {
	target := matrixTarget
	if p == model.Emscripten {
		target = wasmTarget
	}

	with := []workflow.Param{
		workflow.P("target", target),
		workflow.P("args", strings.Join(buildArgs(p, o), " ")),
	}
	switch p {
	case model.Linux:
		with = append(with, workflow.P("manylinux", "auto"))
	case model.Emscripten:
		with = append(with, workflow.P("rust-toolchain", "nightly"))
	}

	return workflow.Step{Name: "Build wheels", Uses: actionMaturin, With: with}
}

func buildArgs(p model.Platform, o options) []string {
	args := []string{"--release", "--out", "dist"}
	args = append(args, interpreterArgs(p, o)...)
	if o.manifest != "" {
		args = append(args, "--manifest-path", o.manifest)
	}
	if o.zig && p == model.Linux {
		args = append(args, "--zig")
	}
	return args
}

// interpreterArgs selects how the build finds interpreters. A stable-ABI
// build needs none, and neither does a standalone binary built without an
// interpreter on the runner.
func interpreterArgs(p model.Platform, o options) []string {
	if model.IsStableABI(o.bridge) {
		return nil
	}
	if model.IsStandaloneBinary(o.bridge) && !o.setupRuntime {
		return nil
	}

	if p == model.Emscripten {
		return []string{"-i", pythonVersion}
	}
	return []string{"--find-interpreter"}
}

func uploadStep(p model.Platform) workflow.Step {
	name := wheelsArtifact
	if p == model.Emscripten {
		name = wasmArtifact
	}
	return workflow.Step{
		Name: "Upload wheels",
		Uses: actionUploadArtifact,
		With: []workflow.Param{workflow.P("name", name), workflow.P("path", "dist")},
	}
}

func testSteps(p model.Platform, o options) []workflow.Step {
	install := fmt.Sprintf("%s --find-links dist --force-reinstall", o.projectName)
	chdir := o.chdir()

	switch p {
	case model.Linux:
		return []workflow.Step{
			{
				Name:  "pytest",
				If:    "${{ startsWith(matrix.target, 'x86_64') }}",
				Shell: "bash",
				Run: script(
					"set -e",
					"pip install "+install,
					"pip install pytest",
					chdir+"pytest",
				),
			},
			{
				Name: "pytest",
				// TODO: ppc64 never appears in the Linux matrix; decide whether
				// this guard was meant to exclude ppc64le.
				If:   "${{ !startsWith(matrix.target, 'x86') && matrix.target != 'ppc64' }}",
				Uses: actionRunOnArch,
				With: []workflow.Param{
					workflow.P("arch", matrixTarget),
					workflow.P("distro", "ubuntu22.04"),
					workflow.P("githubToken", "${{ github.token }}"),
					workflow.P("install", script(
						"apt-get update",
						"apt-get install -y --no-install-recommends python3 python3-pip",
						"pip3 install -U pip pytest",
					)),
					workflow.P("run", script(
						"set -e",
						"pip3 install "+install,
						chdir+"pytest",
					)),
				},
			},
		}
	case model.Windows, model.MacOS:
		return []workflow.Step{{
			Name:  "pytest",
			If:    "${{ !startsWith(matrix.target, 'aarch64') }}",
			Shell: "bash",
			Run: script(
				"set -e",
				"pip install "+install,
				"pip install pytest",
				chdir+"pytest",
			),
		}}
	case model.Emscripten:
		return []workflow.Step{
			{
				Uses: actionSetupNode,
				With: []workflow.Param{workflow.Q("node-version", nodeVersion)},
			},
			{
				Name: "pytest",
				Run: script(
					"set -e",
					"pyodide venv .venv",
					"source .venv/bin/activate",
					"pip install "+install,
					"pip install pytest",
					chdir+"python -m pytest",
				),
			},
		}
	default:
		panic(fmt.Sprintf("generate: no test steps for platform %s", p))
	}
}

// script joins shell lines into a block ending with a newline.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
