package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnindent(t *testing.T) {
	got := Unindent(`
		[package]
		name = "demo"
		  indented = true
	`)

	assert.Equal(t, "[package]\nname = \"demo\"\n  indented = true", got)
	assert.Equal(t, "", Unindent("\n\n"))
	assert.Equal(t, "flat", Unindent("flat"))
}

func TestWriteFiles(t *testing.T) {
	root := WriteFiles(t, map[string]string{
		"Cargo.toml":         `[package]`,
		"rust/nested/a.toml": `x = 1`,
	})

	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[package]\n", string(data))

	_, err = os.Stat(filepath.Join(root, "rust", "nested", "a.toml"))
	assert.NoError(t, err)
}
