package generate

import (
	"fmt"

	"github.com/specialistvlad/wheelci/internal/dag"
)

// needsGraph records emitted jobs in emission order. The release job depends
// on every one of them.
type needsGraph struct {
	g *dag.Graph
}

func newNeedsGraph() *needsGraph {
	return &needsGraph{g: dag.New()}
}

// emit records a job that the release must wait for.
func (n *needsGraph) emit(id string) {
	n.g.AddNode(id)
}

// release adds the release node and returns its needs: every job emitted so
// far, in emission order.
func (n *needsGraph) release(id string) []string {
	emitted := n.g.Nodes()
	n.g.AddNode(id)
	for _, e := range emitted {
		if err := n.g.AddEdge(e, id); err != nil {
			panic(fmt.Sprintf("generate: needs graph: %v", err))
		}
	}

	needs, err := n.g.Dependencies(id)
	if err != nil {
		panic(fmt.Sprintf("generate: needs graph: %v", err))
	}
	return needs
}
