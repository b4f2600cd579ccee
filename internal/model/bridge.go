// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Bridge, the classification of how a compiled native
// artifact talks to the hosted interpreter runtime. Every decision that
// branches on the variant is an exhaustive type switch that panics on an
// unknown implementation.
package model

import "fmt"

// Bridge is the bridging classification of a project. The set of
// implementations is closed; only the types in this file satisfy it.
type Bridge interface {
	fmt.Stringer
	isBridge()
}

// StandaloneBinary is an executable shipped inside a wheel. Hosted is set
// when the binary also embeds a hosted-runtime binding and therefore needs an
// interpreter at build time.
type StandaloneBinary struct {
	Hosted *LanguageBinding
}

// LanguageBinding is a versioned binding against the interpreter API, for
// example pyo3.
type LanguageBinding struct {
	Name       string
	ABIVersion int
}

// StableABIBinding is a binding built once against the stable ABI of the
// given minimum interpreter version.
type StableABIBinding struct {
	Major int
	Minor int
}

// DynamicFFI is a plain C-ABI library loaded through a dynamic FFI layer.
type DynamicFFI struct{}

// UniversalFFI is a library whose bindings are generated by a universal FFI
// tool.
type UniversalFFI struct{}

func (StandaloneBinary) isBridge() {}
func (LanguageBinding) isBridge()  {}
func (StableABIBinding) isBridge() {}
func (DynamicFFI) isBridge()       {}
func (UniversalFFI) isBridge()     {}

func (b StandaloneBinary) String() string {
	if b.Hosted == nil {
		return "bin"
	}
	return "bin(" + b.Hosted.String() + ")"
}

func (b LanguageBinding) String() string {
	return fmt.Sprintf("%s(abi %d)", b.Name, b.ABIVersion)
}

func (b StableABIBinding) String() string {
	return fmt.Sprintf("abi3(>=%d.%d)", b.Major, b.Minor)
}

func (DynamicFFI) String() string   { return "cffi" }
func (UniversalFFI) String() string { return "uniffi" }

// RequiresHostedRuntime reports whether building or installing the artifact
// needs an interpreter on the runner. Only a standalone binary without a
// hosted entry point can do without one.
func RequiresHostedRuntime(b Bridge) bool {
	switch v := b.(type) {
	case StandaloneBinary:
		return v.Hosted != nil
	case LanguageBinding, StableABIBinding, DynamicFFI, UniversalFFI:
		return true
	default:
		panic(fmt.Sprintf("model: unknown bridge %T", b))
	}
}

// IsStandaloneBinary reports whether b is a StandaloneBinary, with or without
// a hosted entry point.
func IsStandaloneBinary(b Bridge) bool {
	switch b.(type) {
	case StandaloneBinary:
		return true
	case LanguageBinding, StableABIBinding, DynamicFFI, UniversalFFI:
		return false
	default:
		panic(fmt.Sprintf("model: unknown bridge %T", b))
	}
}

// IsStableABI reports whether b builds a single artifact per platform that
// is valid for every interpreter version at or above its minimum.
func IsStableABI(b Bridge) bool {
	switch b.(type) {
	case StableABIBinding:
		return true
	case StandaloneBinary, LanguageBinding, DynamicFFI, UniversalFFI:
		return false
	default:
		panic(fmt.Sprintf("model: unknown bridge %T", b))
	}
}
