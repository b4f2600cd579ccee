// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"
)

// Platform is a CI target platform. The numeric order of the concrete values
// is the canonical order used whenever a platform set is iterated.
type Platform uint8

const (
	// All is a request marker that expands to every platform the bridge supports.
	All Platform = iota
	Linux
	Windows
	MacOS
	// Emscripten is the web-sandboxed target.
	Emscripten
)

var platformNames = map[Platform]string{
	All:        "all",
	Linux:      "linux",
	Windows:    "windows",
	MacOS:      "macos",
	Emscripten: "emscripten",
}

// String returns the lower-case name, which is also the job name in the
// generated workflow.
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("platform(%d)", uint8(p))
}

// ParsePlatform converts a user-supplied name into a Platform.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range platformNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q: must be one of 'all', 'linux', 'windows', 'macos', 'emscripten'", s)
}

// ParsePlatforms parses every name, failing on the first unknown one.
func ParsePlatforms(names []string) ([]Platform, error) {
	out := make([]Platform, 0, len(names))
	for _, name := range names {
		p, err := ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DefaultPlatforms is the selection used when nothing is requested.
func DefaultPlatforms() []Platform {
	return []Platform{Linux, Windows, MacOS}
}

// HostedPlatforms is the expansion of All for bridges that can run inside a
// hosted runtime.
func HostedPlatforms() []Platform {
	return []Platform{Linux, Windows, MacOS, Emscripten}
}

// Provider selects the CI system whose schema is produced.
type Provider uint8

const (
	GitHub Provider = iota
)

func (p Provider) String() string {
	switch p {
	case GitHub:
		return "github"
	default:
		return fmt.Sprintf("provider(%d)", uint8(p))
	}
}

// ParseProvider converts a user-supplied provider name.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "github":
		return GitHub, nil
	default:
		return 0, fmt.Errorf("unknown CI provider %q: only 'github' is supported", s)
	}
}
