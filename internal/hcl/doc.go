// Package hcl provides the concrete HCL implementation of the profile
// Loader defined in the `config` package. It finds and parses profile files
// and translates the decoded blocks into the format-agnostic model.
package hcl
