package integration_tests

import (
	"testing"

	"github.com/specialistvlad/wheelci/internal/app"
	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/testutil"
	"github.com/specialistvlad/wheelci/internal/testutil/apptest"
	"github.com/stretchr/testify/require"
)

// TestWorkflowOutput runs the whole pipeline against project layouts on disk
// and compares stdout with the expected workflow.
func TestWorkflowOutput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		files  map[string]string
		cfg    app.Config
		golden string
	}{
		{
			name: "stable abi library without pyproject",
			files: map[string]string{
				"Cargo.toml": `
					[package]
					name = "example"

					[lib]
					crate-type = ["cdylib"]

					[dependencies]
					pyo3 = { version = "0.20", features = ["extension-module", "abi3-py37"] }
				`,
			},
			cfg:    app.Config{Args: []string{"github"}},
			golden: "github_abi3.yml",
		},
		{
			name: "pyo3 library with pytest and zig",
			files: map[string]string{
				"Cargo.toml": `
					[package]
					name = "example-rs"

					[lib]
					crate-type = ["cdylib"]

					[dependencies]
					pyo3 = "0.20"
				`,
				"pyproject.toml": `
					[build-system]
					requires = ["maturin>=1.0,<2.0"]
					build-backend = "maturin"

					[project]
					name = "example"
				`,
			},
			cfg: app.Config{
				GenerationConfig: model.GenerationConfig{Pytest: true, Zig: true},
				Args:             []string{"github"},
			},
			golden: "github_zig_pytest.yml",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := apptest.RunIntegrationTest(t, tc.files, tc.cfg)

			// --- Assert ---
			require.NoError(t, result.Err)
			testutil.AssertGolden(t, tc.golden, []byte(result.Output))
		})
	}
}

// TestWorkflowOutput_IsDeterministic runs the same project twice and expects
// byte-identical documents.
func TestWorkflowOutput_IsDeterministic(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"Cargo.toml": `
			[package]
			name = "example"

			[lib]
			crate-type = ["cdylib"]

			[dependencies]
			uniffi = "0.25"
		`,
		"pyproject.toml": `
			[project]
			name = "example"
		`,
	}
	cfg := app.Config{Args: []string{"github", "--platform", "all"}}
	cfg.Platforms = []model.Platform{model.All}

	first := apptest.RunIntegrationTest(t, files, cfg)
	second := apptest.RunIntegrationTest(t, files, cfg)

	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	require.NotEmpty(t, first.Output)
	require.Equal(t, first.Output, second.Output)
}
