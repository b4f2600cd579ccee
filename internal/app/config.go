package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/wheelci/internal/model"
)

// Names of the settings that can be given explicitly on the command line.
// A profile never overrides a setting listed in Config.Explicit.
const (
	SettingPlatforms    = "platform"
	SettingPytest       = "pytest"
	SettingZig          = "zig"
	SettingManifestPath = "manifest-path"
	SettingOutput       = "output"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	model.GenerationConfig

	// ProfilePath is an HCL profile file or directory; empty for none.
	ProfilePath string
	// WorkDir anchors relative manifest, profile and output paths. Empty
	// means the process working directory.
	WorkDir string

	LogFormat string
	LogLevel  string

	// Args is the invocation without the program name, reproduced in the
	// generated header.
	Args []string
	// Explicit records which settings were given on the command line.
	Explicit map[string]bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = model.StdoutPath
	}
	if len(cfg.Platforms) == 0 {
		cfg.Platforms = model.DefaultPlatforms()
	}
	if cfg.Explicit == nil {
		cfg.Explicit = make(map[string]bool)
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if err := cfg.checkOutput(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// checkOutput rejects an output path that resolves to the cargo manifest,
// including the default one.
func (c *Config) checkOutput() error {
	if c.Output == model.StdoutPath {
		return nil
	}
	manifest := c.ManifestPath
	if manifest == "" {
		manifest = model.DefaultManifestPath
	}
	if filepath.Clean(c.resolvePath(c.Output)) == filepath.Clean(c.resolvePath(manifest)) {
		return errors.New("output must not overwrite the cargo manifest")
	}
	return nil
}
