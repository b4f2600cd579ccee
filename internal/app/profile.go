package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/wheelci/internal/config"
	"github.com/specialistvlad/wheelci/internal/ctxlog"
	"github.com/specialistvlad/wheelci/internal/model"
)

// loadProfile reads the configured profile and merges it under the explicit
// command-line settings.
func (a *App) loadProfile(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if a.config.ProfilePath == "" {
		logger.Debug("No profile configured.")
		return nil
	}

	path := a.config.resolvePath(a.config.ProfilePath)
	profile, err := a.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if profile.Generate == nil {
		logger.Warn("Profile has no generate block.", "path", path)
		return nil
	}
	if err := applyProfile(a.config, profile.Generate); err != nil {
		return fmt.Errorf("invalid profile %s: %w", path, err)
	}
	if err := a.config.checkOutput(); err != nil {
		return fmt.Errorf("invalid profile %s: %w", path, err)
	}
	logger.Debug("Profile merged.", "files", profile.Files)
	return nil
}

// applyProfile copies every profile setting that was not given explicitly.
func applyProfile(cfg *Config, g *config.Generate) error {
	use := func(setting string) bool { return !cfg.Explicit[setting] }

	if g.Platforms != nil && use(SettingPlatforms) {
		ps, err := model.ParsePlatforms(g.Platforms)
		if err != nil {
			return err
		}
		if len(ps) == 0 {
			ps = model.DefaultPlatforms()
		}
		cfg.Platforms = ps
	}
	if g.Pytest != nil && use(SettingPytest) {
		cfg.Pytest = *g.Pytest
	}
	if g.Zig != nil && use(SettingZig) {
		cfg.Zig = *g.Zig
	}
	if g.ManifestPath != nil && use(SettingManifestPath) {
		cfg.ManifestPath = *g.ManifestPath
	}
	if g.Output != nil && use(SettingOutput) {
		cfg.Output = *g.Output
	}
	return nil
}
