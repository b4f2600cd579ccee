// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the domain vocabulary shared by every stage of a
// generation.
//
// # Core Concepts
//
//   - Bridge: how a compiled extension talks to the interpreter. The set of
//     variants is closed and every decision on it is an exhaustive switch.
//
//   - Platform: a CI target. The numeric order of the constants is the order
//     jobs appear in the generated document.
//
//   - GenerationConfig: the resolved settings of one run, assembled from the
//     command line and an optional profile before generation starts.
package model
