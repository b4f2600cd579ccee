package apptest

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/wheelci/internal/app"
	"github.com/specialistvlad/wheelci/internal/hcl"
	"github.com/specialistvlad/wheelci/internal/project"
	"github.com/specialistvlad/wheelci/internal/testutil"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	// Dir is the temporary project directory the run used as its work dir.
	Dir string
}

// RunIntegrationTest writes files into a temporary project directory and runs
// the app there with the real HCL loader and project resolver, using a
// default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context. cfg.WorkDir is replaced by the temporary directory and the log
// level is forced to debug.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg.WorkDir = dir
	cfg.LogLevel = "debug"

	result := &HarnessResult{Dir: dir}
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result.App = app.NewApp(out, logs, appConfig, hcl.NewLoader(os.Environ()), project.NewResolver(dir))
	result.Err = result.App.Run(ctx)
	result.Output = out.String()
	result.LogOutput = logs.String()

	t.Cleanup(func() {
		if os.Getenv("WHEELCI_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})
	return result
}
