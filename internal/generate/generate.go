package generate

import (
	"slices"

	"github.com/specialistvlad/wheelci/internal/model"
	"github.com/specialistvlad/wheelci/internal/workflow"
)

// Input is the fully resolved description of one generation.
type Input struct {
	Meta        workflow.Meta
	ProjectName string
	Bridge      model.Bridge
	// Sdist is true when the project can build a source distribution.
	Sdist  bool
	Config model.GenerationConfig
}

// Generate builds the workflow document: one job per resolved platform in
// canonical order, the sdist job when present, and the release job last.
// When no platforms were requested the defaults are used.
func Generate(in Input) *workflow.Document {
	requested := in.Config.Platforms
	if len(requested) == 0 {
		requested = model.DefaultPlatforms()
	}
	platforms := ResolvePlatforms(requested, in.Bridge)
	opts := newOptions(in)

	doc := &workflow.Document{Meta: in.Meta, On: workflow.DefaultTrigger()}
	needs := newNeedsGraph()

	for _, p := range platforms {
		job := buildJob(p, opts)
		needs.emit(job.ID)
		doc.Jobs = append(doc.Jobs, job)
	}
	if in.Sdist {
		job := sdistJob(opts)
		needs.emit(job.ID)
		doc.Jobs = append(doc.Jobs, job)
	}

	wasm := slices.Contains(platforms, model.Emscripten)
	doc.Jobs = append(doc.Jobs, releaseJob(needs.release(releaseJobID), wasm))
	return doc
}
