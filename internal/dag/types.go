package dag

import "sync"

// Graph is a collection of nodes and their dependencies, representing a DAG.
// Nodes and edges remember the order in which they were added, so every
// listing the graph returns is deterministic. All operations on the graph are
// concurrency-safe.
type Graph struct {
	// mutex protects the node index and order during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order holds node IDs in insertion order.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the nodes this node depends on, in edge insertion order.
	deps []*node
	// dependents holds the nodes that depend on this node, in edge insertion order.
	dependents []*node
}

func (n *node) dependsOn(id string) bool {
	for _, d := range n.deps {
		if d.id == id {
			return true
		}
	}
	return false
}

func ids(nodes []*node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.id)
	}
	return out
}
