package config

// Model is the unified, format-agnostic representation of a profile.
type Model struct {
	// Generate is nil when no file contained a generate block.
	Generate *Generate
	// Files lists the files that contributed, in load order.
	Files []string
}

// Generate holds the generation settings of a profile. A nil pointer or a
// nil slice means the setting was not given.
type Generate struct {
	Platforms    []string
	Pytest       *bool
	Zig          *bool
	ManifestPath *string
	Output       *string
}

// Merge overlays the settings present in other onto g. Settings absent from
// other are kept.
func (g *Generate) Merge(other *Generate) {
	if other == nil {
		return
	}
	if other.Platforms != nil {
		g.Platforms = other.Platforms
	}
	if other.Pytest != nil {
		g.Pytest = other.Pytest
	}
	if other.Zig != nil {
		g.Zig = other.Zig
	}
	if other.ManifestPath != nil {
		g.ManifestPath = other.ManifestPath
	}
	if other.Output != nil {
		g.Output = other.Output
	}
}
