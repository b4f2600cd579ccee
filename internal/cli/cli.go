package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/wheelci/internal/app"
	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet(app.ToolName, pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wheelci - Generate a CI workflow that builds and publishes Python wheels for a Rust project.

Usage:
  wheelci [options] <CI>

Arguments:
  <CI>
    The CI provider to generate a workflow for. Supported: github.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.StringP(app.SettingManifestPath, "m", "", "Path to Cargo.toml.")
	outputFlag := flagSet.StringP(app.SettingOutput, "o", model.StdoutPath, "Output file. '-' writes to stdout.")
	platformFlag := flagSet.StringSlice(app.SettingPlatforms, nil,
		"Platform to build for: all, linux, windows, macos, emscripten. Repeatable or comma-separated. (default linux,windows,macos)")
	pytestFlag := flagSet.Bool(app.SettingPytest, false, "Run pytest against the built wheels.")
	zigFlag := flagSet.Bool(app.SettingZig, false, "Use zig for cross compilation on Linux.")
	configFlag := flagSet.StringP("config", "c", "", "HCL profile file or directory with default settings.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No CI provider given, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("unexpected argument: %s", flagSet.Arg(1))
	}

	provider, err := model.ParseProvider(flagSet.Arg(0))
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}
	platforms, err := model.ParsePlatforms(*platformFlag)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	explicit := make(map[string]bool)
	for _, name := range []string{app.SettingManifestPath, app.SettingOutput, app.SettingPlatforms, app.SettingPytest, app.SettingZig} {
		if flagSet.Changed(name) {
			explicit[name] = true
		}
	}

	config, err := app.NewConfig(app.Config{
		GenerationConfig: model.GenerationConfig{
			Provider:     provider,
			Platforms:    platforms,
			Pytest:       *pytestFlag,
			Zig:          *zigFlag,
			ManifestPath: *manifestFlag,
			Output:       *outputFlag,
		},
		ProfilePath: *configFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Args:        append([]string(nil), args...),
		Explicit:    explicit,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
