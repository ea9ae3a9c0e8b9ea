package flow

import "encoding/json"

// =============================================================================
// Position - 2D Canvas Coordinate
// =============================================================================

// Position is a 2D coordinate on the editor canvas.
// Layout algorithms populate it; the canvas consumes it.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// =============================================================================
// Node - Workflow Graph Vertex
// =============================================================================

// Node is a single vertex of a workflow graph.
//
// Position is optional on input: a nil Position means the node has never been
// placed, and layout algorithms seed their own starting coordinates. Every
// layout output carries a non-nil Position for every node.
type Node struct {
	ID       string    `json:"id" bson:"id"`
	Label    string    `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Role     string    `json:"role,omitempty" bson:"role,omitempty"`   // Agent role driving this node
	Position *Position `json:"position,omitempty" bson:"position,omitempty"`
}

// nodePayload mirrors the nested data object the canvas editor attaches to
// its nodes. Only the fields relevant to layout survive decoding.
type nodePayload struct {
	Label string `json:"label"`
	Role  string `json:"agentRole"`
}

// UnmarshalJSON accepts both the canonical flat node form and the canvas
// editor form, where label and role live in a nested "data" object. Flat
// fields win when both are present.
func (n *Node) UnmarshalJSON(b []byte) error {
	var aux struct {
		ID       string       `json:"id"`
		Label    string       `json:"label"`
		Role     string       `json:"role"`
		Position *Position    `json:"position"`
		Data     *nodePayload `json:"data"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	n.ID = aux.ID
	n.Label = aux.Label
	n.Role = aux.Role
	n.Position = aux.Position
	if aux.Data != nil {
		if n.Label == "" {
			n.Label = aux.Data.Label
		}
		if n.Role == "" {
			n.Role = aux.Data.Role
		}
	}
	return nil
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Placed reports whether the node carries a concrete position.
func (n *Node) Placed() bool { return n.Position != nil }

// WithPosition returns a copy of the node with the given coordinates.
// The original node is not modified.
func (n Node) WithPosition(x, y float64) Node {
	n.Position = &Position{X: x, Y: y}
	return n
}

// =============================================================================
// Edge - Directed Connection
// =============================================================================

// Edge is a directed connection between two node IDs.
// Edges referencing IDs absent from the node list are tolerated: traversals
// skip them rather than failing.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
}

// =============================================================================
// Graph - Wire Format
// =============================================================================

// Graph is the canonical serialization format for workflow graphs.
// Used for JSON files, API requests and responses, caching, and storage.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the node with the given ID and true, or a zero Node and false.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// CloneNodes returns a copy of the node slice with copied Position values.
// Layout algorithms use this so their output never aliases caller memory.
func CloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		if n.Position != nil {
			p := *n.Position
			n.Position = &p
		}
		out[i] = n
	}
	return out
}

// NodeIndex maps each node ID to its index in the slice.
// Later duplicates do not overwrite earlier entries, matching the contract
// that IDs are unique within one invocation.
func NodeIndex(nodes []Node) map[string]int {
	m := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, ok := m[n.ID]; !ok {
			m[n.ID] = i
		}
	}
	return m
}
