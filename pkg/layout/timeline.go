package layout

import "github.com/ComputerConnection/flowgrid/pkg/flow"

// Timeline layout constants: one column per execution level, columns 300
// apart starting at x=100, rows 120 apart centered around y=200.
const (
	timelineStartX        = 100.0
	timelineHorizontalGap = 300.0
	timelineVerticalGap   = 120.0
	timelineCenterY       = 200.0
)

// Timeline returns nodes arranged left-to-right by topological level,
// vertically centered within each level group.
//
// Levels come from a Kahn traversal: level 0 holds every node with no
// inbound edges, and each child lands at the maximum parent level plus one.
// Nodes the traversal never releases - members of a cycle - keep the
// default level 0 rather than being left unpositioned. Dangling edges are
// skipped.
func Timeline(nodes []flow.Node, edges []flow.Edge) []flow.Node {
	if len(nodes) == 0 {
		return []flow.Node{}
	}

	index := flow.NodeIndex(nodes)
	inDegree := make(map[string]int, len(nodes))
	successors := make(map[string][]string, len(nodes))

	for _, e := range edges {
		if _, ok := index[e.Source]; !ok {
			continue
		}
		if _, ok := index[e.Target]; !ok {
			continue
		}
		successors[e.Source] = append(successors[e.Source], e.Target)
		inDegree[e.Target]++
	}

	levels := make(map[string]int, len(nodes))
	var queue []string
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
			levels[n.ID] = 0
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, succ := range successors[curr] {
			if level := levels[curr] + 1; level > levels[succ] {
				levels[succ] = level
			}
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	// Group by final level, preserving input order within each group.
	// Cycle members were never enqueued and default to level 0.
	groups := make(map[int][]string)
	for _, n := range nodes {
		level := levels[n.ID]
		groups[level] = append(groups[level], n.ID)
	}

	positions := make(map[string]flow.Position, len(nodes))
	for level, ids := range groups {
		startY := float64(len(ids)-1)*timelineVerticalGap/-2 + timelineCenterY
		for i, id := range ids {
			positions[id] = flow.Position{
				X: timelineStartX + float64(level)*timelineHorizontalGap,
				Y: startY + float64(i)*timelineVerticalGap,
			}
		}
	}

	out := flow.CloneNodes(nodes)
	for i := range out {
		p := positions[out[i].ID]
		out[i].Position = &flow.Position{X: p.X, Y: p.Y}
	}
	return out
}
