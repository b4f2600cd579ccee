package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// ReadGolden returns the contents of testdata/<name> relative to the calling
// test's package directory.
func ReadGolden(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "failed to read golden file %q", name)
	return string(data)
}

// AssertGolden compares got with testdata/<name> and reports a line diff on
// mismatch.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	want := ReadGolden(t, name)
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output does not match golden file %q (-want +got):\n%s", name, diff)
	}
}
