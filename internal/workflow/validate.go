package workflow

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/wheelci/internal/dag"
)

// ErrInvalidDocument is wrapped by every error returned from Validate.
var ErrInvalidDocument = errors.New("invalid workflow document")

// Validate checks the structural rules a renderable document must satisfy:
// job IDs are non-empty and unique, every job has a runner and at least one
// step, every needs entry names a job emitted earlier, and the needs graph
// has no cycles.
func (d *Document) Validate() error {
	if len(d.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidDocument)
	}

	g := dag.New()
	for _, job := range d.Jobs {
		if job.ID == "" {
			return fmt.Errorf("%w: job with empty id", ErrInvalidDocument)
		}
		if g.HasNode(job.ID) {
			return fmt.Errorf("%w: duplicate job %q", ErrInvalidDocument, job.ID)
		}
		if job.RunsOn == "" {
			return fmt.Errorf("%w: job %q has no runner", ErrInvalidDocument, job.ID)
		}
		if len(job.Steps) == 0 {
			return fmt.Errorf("%w: job %q has no steps", ErrInvalidDocument, job.ID)
		}
		g.AddNode(job.ID)
		for _, need := range job.Needs {
			if !g.HasNode(need) {
				return fmt.Errorf("%w: job %q needs %q, which is not emitted before it", ErrInvalidDocument, job.ID, need)
			}
			if err := g.AddEdge(need, job.ID); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
			}
		}
	}

	if err := g.DetectCycles(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}
