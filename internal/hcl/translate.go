package hcl

import "github.com/specialistvlad/wheelci/internal/config"

// translateGenerate converts the HCL-specific generate schema into the
// agnostic model.
func translateGenerate(b *generateBlock) *config.Generate {
	g := &config.Generate{
		Pytest:       b.Pytest,
		Zig:          b.Zig,
		ManifestPath: b.ManifestPath,
		Output:       b.Output,
	}
	if b.Platforms != nil {
		g.Platforms = append([]string{}, *b.Platforms...)
	}
	return g
}
