package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/wheelci/internal/ctxlog"
	"github.com/specialistvlad/wheelci/internal/generate"
	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/workflow"
)

// Run executes one generation based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if err := a.loadProfile(ctx); err != nil {
		return err
	}

	meta, err := a.resolver.Resolve(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to resolve project metadata: %w", err)
	}
	ctx = ctxlog.With(ctx, "project", meta.Name)
	logger = ctxlog.FromContext(ctx)

	doc := generate.Generate(generate.Input{
		Meta:        workflow.Meta{Tool: ToolName, Version: Version, Args: a.config.Args},
		ProjectName: meta.Name,
		Bridge:      meta.Bridge,
		Sdist:       meta.Sdist,
		Config:      a.config.GenerationConfig,
	})
	logger.Debug("Workflow generated.", "provider", a.config.Provider.String(), "jobs", doc.JobIDs())

	out, err := workflow.Render(doc)
	if err != nil {
		return fmt.Errorf("failed to render workflow: %w", err)
	}

	if err := a.write(ctx, out); err != nil {
		return err
	}
	logger.Debug("App.Run method finished.")
	return nil
}

// write sends the document to stdout or replaces the output file.
func (a *App) write(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx)

	if a.config.Output == model.StdoutPath {
		if _, err := a.outW.Write(data); err != nil {
			return fmt.Errorf("failed to write workflow to stdout: %w", err)
		}
		logger.Debug("Workflow written to stdout.", "bytes", len(data))
		return nil
	}

	path := a.config.resolvePath(a.config.Output)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workflow: %w", err)
	}
	logger.Info("Workflow written.", "path", path, "bytes", len(data))
	return nil
}

// resolvePath anchors a relative path at the configured work directory.
func (c *Config) resolvePath(path string) string {
	if c.WorkDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.WorkDir, path)
}
