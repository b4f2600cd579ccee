package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/wheelci/internal/config"
	"github.com/specialistvlad/wheelci/internal/project"
)

// ToolName is the canonical name written into generated headers.
const ToolName = "wheelci"

// Version is the tool version written into generated headers. It is a
// variable so release builds can set it with -ldflags.
var Version = "0.1.0"

// MetadataResolver resolves the project the workflow is generated for.
type MetadataResolver interface {
	Resolve(ctx context.Context, manifestPath string) (*project.Metadata, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	resolver MetadataResolver
}

// NewApp is the constructor for the main application. The generated document
// goes to outW when the output is stdout; logs always go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, resolver MetadataResolver) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		resolver: resolver,
	}
}

// Config returns the configuration the app runs with, including any settings
// merged from a profile. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
