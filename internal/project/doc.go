// Package project reads a crate's Cargo.toml and the pyproject.toml beside
// it and resolves the project's import name and how it bridges to the
// interpreter. A pyproject.toml also means a source distribution can be built.
package project
