package flow

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [NewTopology] when a node has an
	// empty ID. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [NewTopology] when two nodes share
	// an ID. Node IDs must be unique within one graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEdgeEndpoint is returned by [NewTopology] when an edge
	// references a node ID absent from the node list. The layout engine
	// tolerates such edges; the strict validation path does not.
	ErrUnknownEdgeEndpoint = errors.New("edge references unknown node")

	// ErrGraphHasCycle is returned by [Topology.Validate] and
	// [Topology.ExecutionLevels] when a directed cycle is detected.
	// Cycles are found with depth-first white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Topology is an adjacency-indexed view of a workflow graph used for
// validation and execution-order queries. It is built once per graph and
// never mutated afterwards.
//
// Unlike the layout algorithms, which silently skip dangling edges,
// NewTopology enforces the strict upstream contract: unique non-empty node
// IDs and edges whose endpoints both exist.
type Topology struct {
	nodes        []Node
	index        map[string]int
	successors   map[string][]string
	predecessors map[string][]string
}

// NewTopology builds the adjacency view for the given nodes and edges.
// Returns ErrInvalidNodeID, ErrDuplicateNodeID, or ErrUnknownEdgeEndpoint
// when the graph violates the strict contract.
func NewTopology(nodes []Node, edges []Edge) (*Topology, error) {
	t := &Topology{
		nodes:        CloneNodes(nodes),
		index:        make(map[string]int, len(nodes)),
		successors:   make(map[string][]string, len(nodes)),
		predecessors: make(map[string][]string, len(nodes)),
	}

	for i, n := range nodes {
		if n.ID == "" {
			return nil, ErrInvalidNodeID
		}
		if _, exists := t.index[n.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		t.index[n.ID] = i
	}

	for _, e := range edges {
		if _, ok := t.index[e.Source]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeEndpoint, e.Source)
		}
		if _, ok := t.index[e.Target]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeEndpoint, e.Target)
		}
		t.successors[e.Source] = append(t.successors[e.Source], e.Target)
		t.predecessors[e.Target] = append(t.predecessors[e.Target], e.Source)
	}

	return t, nil
}

// NodeCount returns the number of nodes.
func (t *Topology) NodeCount() int { return len(t.nodes) }

// Successors returns the IDs this node has edges to.
// The returned slice is a read-only view.
func (t *Topology) Successors(id string) []string { return t.successors[id] }

// Predecessors returns the IDs that have edges to this node.
// The returned slice is a read-only view.
func (t *Topology) Predecessors(id string) []string { return t.predecessors[id] }

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (t *Topology) InDegree(id string) int { return len(t.predecessors[id]) }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (t *Topology) OutDegree(id string) int { return len(t.successors[id]) }

// Sources returns the IDs of nodes with no incoming edges, in input order.
// These are the workflow entry points.
func (t *Topology) Sources() []string {
	var out []string
	for _, n := range t.nodes {
		if len(t.predecessors[n.ID]) == 0 {
			out = append(out, n.ID)
		}
	}
	return out
}

// Sinks returns the IDs of nodes with no outgoing edges, in input order.
// These are the workflow terminals.
func (t *Topology) Sinks() []string {
	var out []string
	for _, n := range t.nodes {
		if len(t.successors[n.ID]) == 0 {
			out = append(out, n.ID)
		}
	}
	return out
}

// Validate checks that the graph is acyclic and returns nil if so.
// Returns ErrGraphHasCycle otherwise. Runs in O(N+E) time.
func (t *Topology) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(t.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, succ := range t.successors[id] {
			switch color[succ] {
			case white:
				dfs(succ)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, n := range t.nodes {
		if color[n.ID] == white {
			dfs(n.ID)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// ExecutionLevels groups node IDs into batches that can run in parallel.
// Level 0 holds every node with no dependencies; each following level holds
// the nodes whose dependencies are all satisfied by earlier levels.
//
// Uses Kahn's algorithm. Returns ErrGraphHasCycle if any node is never
// released, which happens exactly when the graph contains a cycle.
func (t *Topology) ExecutionLevels() ([][]string, error) {
	inDegree := make(map[string]int, len(t.nodes))
	var queue []string
	for _, n := range t.nodes {
		degree := len(t.predecessors[n.ID])
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	var levels [][]string
	processed := 0

	for len(queue) > 0 {
		current := slices.Clone(queue)
		queue = queue[:0]
		processed += len(current)

		for _, id := range current {
			for _, succ := range t.successors[id] {
				inDegree[succ]--
				if inDegree[succ] == 0 {
					queue = append(queue, succ)
				}
			}
		}

		levels = append(levels, current)
	}

	if processed != len(t.nodes) {
		return nil, ErrGraphHasCycle
	}
	return levels, nil
}
