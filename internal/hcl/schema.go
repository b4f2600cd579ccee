package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Generate []*generateBlock `hcl:"generate,block"`
	Remain   hcl.Body         `hcl:",remain"`
}

// generateBlock is the `generate { ... }` block. Pointer fields stay nil when
// the attribute is absent.
type generateBlock struct {
	Platforms    *[]string `hcl:"platforms,optional"`
	Pytest       *bool     `hcl:"pytest,optional"`
	Zig          *bool     `hcl:"zig,optional"`
	ManifestPath *string   `hcl:"manifest_path,optional"`
	Output       *string   `hcl:"output,optional"`
}
