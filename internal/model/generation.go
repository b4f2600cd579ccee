// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// DefaultManifestPath is the manifest location that needs no override argument.
const DefaultManifestPath = "Cargo.toml"

// StdoutPath is the output sentinel for standard output.
const StdoutPath = "-"

// GenerationConfig is the resolved input bundle for one generation. It is
// treated as immutable once generation starts.
type GenerationConfig struct {
	Provider  Provider
	Platforms []Platform
	Pytest    bool
	Zig       bool

	// ManifestPath is empty when no override was given.
	ManifestPath string
	Output       string
}

// ManifestOverride returns the manifest path and true when it differs from
// the default location.
func (c GenerationConfig) ManifestOverride() (string, bool) {
	if c.ManifestPath == "" || c.ManifestPath == DefaultManifestPath {
		return "", false
	}
	return c.ManifestPath, true
}
