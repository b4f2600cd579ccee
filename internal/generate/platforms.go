package generate

import (
	"slices"

	"github.com/specialistvlad/wheelci/internal/model"
)

// ResolvePlatforms expands the requested platforms into a deduplicated set in
// canonical order. The All marker expands to every platform the bridge can
// target. Emscripten never survives for a standalone binary, however it was
// requested. The requested list must not be empty.
func ResolvePlatforms(requested []model.Platform, bridge model.Bridge) []model.Platform {
	isBin := model.IsStandaloneBinary(bridge)

	seen := make(map[model.Platform]bool)
	for _, p := range requested {
		if p != model.All {
			seen[p] = true
			continue
		}
		expansion := model.HostedPlatforms()
		if isBin {
			expansion = model.DefaultPlatforms()
		}
		for _, e := range expansion {
			seen[e] = true
		}
	}
	if isBin {
		delete(seen, model.Emscripten)
	}

	out := make([]model.Platform, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
