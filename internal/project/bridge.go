package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/wheelci/internal/model"
)

// bindingCrates are the interpreter binding crates, in detection priority.
var bindingCrates = []string{"pyo3", "pyo3-ffi", "cpython"}

// detectBridge classifies the crate. An explicit bindings selection from
// pyproject.toml wins over detection from dependencies.
func detectBridge(m *cargoManifest, bindings string) (model.Bridge, error) {
	if bindings != "" {
		return explicitBridge(m, bindings)
	}

	if binding, name, ok := findBinding(m); ok {
		if !m.hasLib {
			lb := languageBinding(name, binding)
			return model.StandaloneBinary{Hosted: &lb}, nil
		}
		if abi3, ok := stableABI(binding); ok {
			return abi3, nil
		}
		return languageBinding(name, binding), nil
	}
	if _, ok := m.dependency("uniffi"); ok {
		return model.UniversalFFI{}, nil
	}
	if m.isCdylib() {
		return model.DynamicFFI{}, nil
	}
	return model.StandaloneBinary{}, nil
}

func explicitBridge(m *cargoManifest, bindings string) (model.Bridge, error) {
	switch bindings {
	case "cffi":
		return model.DynamicFFI{}, nil
	case "uniffi":
		return model.UniversalFFI{}, nil
	case "bin":
		if binding, name, ok := findBinding(m); ok {
			lb := languageBinding(name, binding)
			return model.StandaloneBinary{Hosted: &lb}, nil
		}
		return model.StandaloneBinary{}, nil
	case "pyo3", "pyo3-ffi", "rust-cpython":
		crate := bindings
		if crate == "rust-cpython" {
			crate = "cpython"
		}
		dep, ok := m.dependency(crate)
		if !ok {
			return nil, fmt.Errorf("bindings %q selected but %s is not a dependency of %s", bindings, crate, m.Package.Name)
		}
		if abi3, ok := stableABI(dep); ok {
			return abi3, nil
		}
		return languageBinding(crate, dep), nil
	default:
		return nil, fmt.Errorf("unknown bindings %q: must be one of 'pyo3', 'pyo3-ffi', 'rust-cpython', 'cffi', 'uniffi', 'bin'", bindings)
	}
}

func findBinding(m *cargoManifest) (dependency, string, bool) {
	for _, name := range bindingCrates {
		if dep, ok := m.dependency(name); ok {
			return dep, name, true
		}
	}
	return dependency{}, "", false
}

func languageBinding(name string, dep dependency) model.LanguageBinding {
	return model.LanguageBinding{Name: name, ABIVersion: minorVersion(dep.Version)}
}

// stableABI reads the abi3 feature flags. `abi3-pyXY` pins the minimum
// interpreter to 3.Y; a bare `abi3` means 3.7.
func stableABI(dep dependency) (model.StableABIBinding, bool) {
	for _, f := range dep.Features {
		rest, ok := strings.CutPrefix(f, "abi3-py3")
		if !ok || rest == "" {
			continue
		}
		if minor, err := strconv.Atoi(rest); err == nil {
			return model.StableABIBinding{Major: 3, Minor: minor}, true
		}
	}
	if dep.hasFeature("abi3") {
		return model.StableABIBinding{Major: 3, Minor: 7}, true
	}
	return model.StableABIBinding{}, false
}

// minorVersion extracts the minor component of a requirement such as
// "0.20", "^0.19.2" or "=0.21.0". Unparseable input yields 0.
func minorVersion(req string) int {
	req = strings.TrimLeft(strings.TrimSpace(req), "^~=<> ")
	parts := strings.Split(req, ".")
	if len(parts) < 2 {
		return 0
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return minor
}
