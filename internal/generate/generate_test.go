package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMeta = workflow.Meta{Tool: "wheelci", Version: "0.1.0", Args: []string{"github"}}

var pyo3 = model.LanguageBinding{Name: "pyo3", ABIVersion: 7}

func input(bridge model.Bridge, sdist bool, cfg model.GenerationConfig) Input {
	if cfg.Platforms == nil {
		cfg.Platforms = model.DefaultPlatforms()
	}
	return Input{
		Meta:        testMeta,
		ProjectName: "example",
		Bridge:      bridge,
		Sdist:       sdist,
		Config:      cfg,
	}
}

func render(t *testing.T, in Input) string {
	t.Helper()
	out, err := workflow.Render(Generate(in))
	require.NoError(t, err)
	return string(out)
}

func TestGenerateGolden(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		golden string
		in     Input
	}{
		{
			golden: "github_bindings.yml",
			in:     input(pyo3, true, model.GenerationConfig{}),
		},
		{
			golden: "github_abi3.yml",
			in:     input(model.StableABIBinding{Major: 3, Minor: 7}, false, model.GenerationConfig{}),
		},
		{
			golden: "github_zig_pytest.yml",
			in:     input(pyo3, true, model.GenerationConfig{Pytest: true, Zig: true}),
		},
		{
			golden: "github_bin.yml",
			in:     input(model.StandaloneBinary{}, true, model.GenerationConfig{}),
		},
		{
			golden: "github_cffi_all_pytest_manifest.yml",
			in: input(model.DynamicFFI{}, true, model.GenerationConfig{
				Platforms:    []model.Platform{model.All},
				Pytest:       true,
				ManifestPath: "rust/Cargo.toml",
			}),
		},
		{
			golden: "github_bin_hosted_emscripten.yml",
			in: input(model.StandaloneBinary{Hosted: &pyo3}, false, model.GenerationConfig{
				Platforms: []model.Platform{model.Linux, model.Emscripten},
				Pytest:    true,
			}),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.golden, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got := render(t, tc.in)

			// --- Assert ---
			want, err := os.ReadFile(filepath.Join("testdata", tc.golden))
			require.NoError(t, err)
			if diff := cmp.Diff(string(want), got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tc.golden, diff)
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	in := input(model.UniversalFFI{}, true, model.GenerationConfig{
		Platforms: []model.Platform{model.Emscripten, model.MacOS, model.All, model.Linux},
		Pytest:    true,
		Zig:       true,
	})

	first := render(t, in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, render(t, in))
	}
}

func TestGenerateDefaultsWhenNoPlatformsRequested(t *testing.T) {
	doc := Generate(Input{Meta: testMeta, ProjectName: "example", Bridge: pyo3, Config: model.GenerationConfig{}})

	assert.Equal(t, []string{"linux", "windows", "macos", "release"}, doc.JobIDs())
}

// A language binding on the three default platforms with an sdist yields five
// sections and no test steps.
func TestGenerateBindingsWithSdist(t *testing.T) {
	// --- Arrange ---
	in := input(model.LanguageBinding{Name: "x", ABIVersion: 7}, true, model.GenerationConfig{})

	// --- Act ---
	doc := Generate(in)

	// --- Assert ---
	require.Equal(t, []string{"linux", "windows", "macos", "sdist", "release"}, doc.JobIDs())
	release, ok := doc.Job("release")
	require.True(t, ok)
	assert.Equal(t, []string{"linux", "windows", "macos", "sdist"}, release.Needs)

	for _, job := range doc.Jobs {
		for _, step := range job.Steps {
			assert.NotEqual(t, "pytest", step.Name, "job %s must not carry test steps", job.ID)
		}
	}
}

func TestReleaseNeedsMatchEmittedJobs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		bridge    model.Bridge
		platforms []model.Platform
		sdist     bool
		wantNeeds []string
	}{
		{
			name:      "defaults with sdist",
			bridge:    pyo3,
			platforms: model.DefaultPlatforms(),
			sdist:     true,
			wantNeeds: []string{"linux", "windows", "macos", "sdist"},
		},
		{
			name:      "all platforms for a hosted bridge",
			bridge:    model.UniversalFFI{},
			platforms: []model.Platform{model.All},
			wantNeeds: []string{"linux", "windows", "macos", "emscripten"},
		},
		{
			name:      "emscripten dropped for a binary",
			bridge:    model.StandaloneBinary{},
			platforms: []model.Platform{model.Emscripten, model.Linux},
			sdist:     true,
			wantNeeds: []string{"linux", "sdist"},
		},
		{
			name:      "only emscripten for a binary leaves an empty release",
			bridge:    model.StandaloneBinary{},
			platforms: []model.Platform{model.Emscripten},
			wantNeeds: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := Generate(input(tc.bridge, tc.sdist, model.GenerationConfig{Platforms: tc.platforms}))

			release := doc.Jobs[len(doc.Jobs)-1]
			assert.Equal(t, "release", release.ID)
			assert.Equal(t, tc.wantNeeds, release.Needs)
			assert.Equal(t, doc.JobIDs()[:len(doc.Jobs)-1], release.Needs, "needs must list every emitted job in order")
		})
	}
}

func TestRuntimeSetupStep(t *testing.T) {
	t.Parallel()

	bridges := []model.Bridge{
		model.StandaloneBinary{},
		model.StandaloneBinary{Hosted: &pyo3},
		pyo3,
		model.StableABIBinding{Major: 3, Minor: 8},
		model.DynamicFFI{},
		model.UniversalFFI{},
	}

	for _, bridge := range bridges {
		for _, pytest := range []bool{false, true} {
			pytest := pytest
			name := bridge.String()
			if pytest {
				name += "/pytest"
			}
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				doc := Generate(input(bridge, false, model.GenerationConfig{
					Platforms: []model.Platform{model.All},
					Pytest:    pytest,
				}))
				want := pytest || model.RequiresHostedRuntime(bridge)

				for _, job := range doc.Jobs {
					if job.ID == "release" {
						continue
					}
					assert.Equal(t, want, hasStep(job, actionSetupPython), "setup-python in job %s", job.ID)
					assert.Equal(t, pytest, hasStepNamed(job, "pytest"), "pytest in job %s", job.ID)
				}
			})
		}
	}
}

// A binary without a hosted entry point still installs an interpreter when
// tests are requested, since the tests themselves need one.
func TestBinaryWithPytestSetsUpRuntime(t *testing.T) {
	doc := Generate(input(model.StandaloneBinary{}, false, model.GenerationConfig{Pytest: true}))

	linux, ok := doc.Job("linux")
	require.True(t, ok)
	assert.True(t, hasStep(linux, actionSetupPython))
	assert.True(t, hasStepNamed(linux, "pytest"))
	assert.Equal(t, "--release --out dist --find-interpreter", withValue(t, linux, "Build wheels", "args"))
}

func TestZigOnlyAffectsLinux(t *testing.T) {
	doc := Generate(input(pyo3, false, model.GenerationConfig{
		Platforms: []model.Platform{model.All},
		Zig:       true,
	}))

	for _, job := range doc.Jobs {
		if job.ID == "release" {
			continue
		}
		args := withValue(t, job, "Build wheels", "args")
		assert.Equal(t, job.ID == "linux", strings.HasSuffix(args, " --zig"), "job %s args %q", job.ID, args)
	}
}

func TestManifestPropagation(t *testing.T) {
	doc := Generate(input(pyo3, true, model.GenerationConfig{
		Platforms:    []model.Platform{model.All},
		Pytest:       true,
		ManifestPath: "crates/py/Cargo.toml",
	}))

	for _, job := range doc.Jobs {
		for _, step := range job.Steps {
			for _, p := range step.With {
				if p.Key == "args" && step.Uses == actionMaturin && job.ID != "release" {
					assert.Contains(t, p.Value, "--manifest-path crates/py/Cargo.toml", "job %s step %s", job.ID, step.Name)
				}
			}
			if step.Name == "pytest" {
				assert.Contains(t, step.Run+runParam(step), "cd crates/py && ", "job %s", job.ID)
			}
		}
	}
}

func TestDefaultManifestPathIsNotAnOverride(t *testing.T) {
	doc := Generate(input(pyo3, true, model.GenerationConfig{Pytest: true, ManifestPath: "Cargo.toml"}))

	out, err := workflow.Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "--manifest-path")
	assert.NotContains(t, string(out), "cd ")
}

func TestReleaseWasmSteps(t *testing.T) {
	t.Run("present with emscripten", func(t *testing.T) {
		doc := Generate(input(pyo3, false, model.GenerationConfig{
			Platforms: []model.Platform{model.Linux, model.Emscripten},
		}))
		release, _ := doc.Job("release")
		assert.True(t, hasStep(release, actionGHRelease))
		assert.Len(t, release.Steps, 4)
	})

	t.Run("absent without emscripten", func(t *testing.T) {
		doc := Generate(input(pyo3, false, model.GenerationConfig{}))
		release, _ := doc.Job("release")
		assert.False(t, hasStep(release, actionGHRelease))
		assert.Len(t, release.Steps, 2)
	})

	t.Run("absent when emscripten was dropped", func(t *testing.T) {
		doc := Generate(input(model.StandaloneBinary{Hosted: &pyo3}, false, model.GenerationConfig{
			Platforms: []model.Platform{model.Emscripten, model.Linux},
		}))
		release, _ := doc.Job("release")
		assert.False(t, hasStep(release, actionGHRelease))
	})
}

func TestJobLayout(t *testing.T) {
	doc := Generate(input(pyo3, false, model.GenerationConfig{Platforms: []model.Platform{model.All}}))

	want := map[string]struct {
		runner string
		matrix []string
	}{
		"linux":      {"ubuntu-latest", []string{"x86_64", "x86", "aarch64", "armv7", "s390x", "ppc64le"}},
		"windows":    {"windows-latest", []string{"x64", "x86"}},
		"macos":      {"macos-latest", []string{"x86_64", "aarch64"}},
		"emscripten": {"ubuntu-latest", nil},
	}
	for _, job := range doc.Jobs[:len(doc.Jobs)-1] {
		assert.Equal(t, want[job.ID].runner, job.RunsOn, job.ID)
		assert.Equal(t, want[job.ID].matrix, job.Matrix, job.ID)
		assert.Equal(t, actionCheckout, job.Steps[0].Uses, "checkout is always first in %s", job.ID)
	}
}

func hasStep(job workflow.Job, uses string) bool {
	for _, s := range job.Steps {
		if s.Uses == uses {
			return true
		}
	}
	return false
}

func hasStepNamed(job workflow.Job, name string) bool {
	for _, s := range job.Steps {
		if s.Name == name {
			return true
		}
	}
	return false
}

func withValue(t *testing.T, job workflow.Job, step, key string) string {
	t.Helper()
	for _, s := range job.Steps {
		if s.Name != step {
			continue
		}
		for _, p := range s.With {
			if p.Key == key {
				return p.Value
			}
		}
	}
	t.Fatalf("job %s has no step %q with %q", job.ID, step, key)
	return ""
}

func runParam(s workflow.Step) string {
	for _, p := range s.With {
		if p.Key == "run" {
			return p.Value
		}
	}
	return ""
}
