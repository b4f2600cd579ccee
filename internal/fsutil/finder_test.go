package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/wheelci/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"b.hcl":             "",
		"a.hcl":             "",
		"notes.txt":         "",
		"nested/c.hcl":      "",
		"nested/d.hclx":     "",
		"nested/e/f.hcl":    "",
		".cache/g.hcl":      "",
		"nested/.old/h.hcl": "",
	})

	got, err := FindFiles(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
		filepath.Join(root, "nested", "e", "f.hcl"),
	}, got)
}

func TestFindFiles_SeveralExtensions(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"a.hcl":  "",
		"b.txt":  "",
		"c.json": "",
	})

	got, err := FindFiles(root, ".hcl", ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.hcl"), filepath.Join(root, "c.json")}, got)
}

func TestFindFiles_DotRootIsWalked(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{".wheelci/a.hcl": ""})

	got, err := FindFiles(filepath.Join(root, ".wheelci"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".wheelci", "a.hcl")}, got)
}

func TestFindFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFiles(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.Error(t, err)
}

func TestFindFiles_NoExtensionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _, _ = FindFiles(t.TempDir()) })
}
