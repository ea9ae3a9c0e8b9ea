package errors

import (
	"unicode"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// MaxGraphNodes caps the number of nodes accepted from untrusted input.
// The force layout's all-pairs repulsion is quadratic, so unbounded API
// input would make layout requests a denial-of-service vector.
const MaxGraphNodes = 2000

// MaxNodeIDLength caps node identifier length from untrusted input.
const MaxNodeIDLength = 256

// ValidateGraph checks a graph document from an untrusted source (API
// request, imported file) before it reaches the pipeline.
//
// The rules are intentionally conservative:
//   - Node IDs must be non-empty, unique, and at most 256 characters
//   - Node IDs must not contain control characters
//   - The node count must not exceed MaxGraphNodes
//
// Dangling edges are NOT rejected here: the layout engine tolerates them
// by contract, and strict acyclicity checks belong to flow.Topology.
func ValidateGraph(g flow.Graph) error {
	if len(g.Nodes) > MaxGraphNodes {
		return New(ErrCodeInvalidGraph, "too many nodes: %d (max %d)", len(g.Nodes), MaxGraphNodes)
	}

	seen := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return New(ErrCodeInvalidGraph, "node %d has an empty id", i)
		}
		if len(n.ID) > MaxNodeIDLength {
			return New(ErrCodeInvalidGraph, "node id too long (max %d characters)", MaxNodeIDLength)
		}
		for _, r := range n.ID {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidGraph, "node id %q contains control characters", n.ID)
			}
		}
		if seen[n.ID] {
			return New(ErrCodeInvalidGraph, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}

	return nil
}
