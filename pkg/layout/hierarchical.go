package layout

import (
	"math"
	"sort"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// Direction selects the primary axis and growth direction of the
// hierarchical layout.
type Direction string

// Layout directions: top-to-bottom, left-to-right, bottom-to-top,
// right-to-left.
const (
	DirectionTB Direction = "TB"
	DirectionLR Direction = "LR"
	DirectionBT Direction = "BT"
	DirectionRL Direction = "RL"
)

// Default hierarchical geometry.
const (
	DefaultNodeWidth  = 180.0
	DefaultNodeHeight = 60.0
	DefaultRankSep    = 120.0
	DefaultNodeSep    = 80.0
)

// HierarchicalOptions configures the hierarchical (rank-based) layout.
// Zero values take the package defaults.
type HierarchicalOptions struct {
	Direction  Direction // TB (default), LR, BT, or RL
	NodeWidth  float64   // Box width used for centering
	NodeHeight float64   // Box height used for centering
	RankSep    float64   // Separation between ranks along the primary axis
	NodeSep    float64   // Separation between nodes within a rank
}

func (o HierarchicalOptions) withDefaults() HierarchicalOptions {
	switch o.Direction {
	case DirectionTB, DirectionLR, DirectionBT, DirectionRL:
	default:
		o.Direction = DirectionTB
	}
	if o.NodeWidth <= 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodeHeight <= 0 {
		o.NodeHeight = DefaultNodeHeight
	}
	if o.RankSep <= 0 {
		o.RankSep = DefaultRankSep
	}
	if o.NodeSep <= 0 {
		o.NodeSep = DefaultNodeSep
	}
	return o
}

// Hierarchical returns nodes arranged in a layered, tree-like fashion.
//
// Ranks are assigned by longest path from the roots (Kahn traversal), nodes
// within a rank are ordered by barycenter sweeps to reduce edge crossings,
// and coordinates follow from rank and node separation. Each output
// position is the top-left corner of the node's box: the rank-assigned
// center minus half the node width and height.
//
// The layout is deterministic for a fixed input ordering and option set.
// Isolated nodes sit at rank 0; dangling edges are skipped.
func Hierarchical(nodes []flow.Node, edges []flow.Edge, opts HierarchicalOptions) []flow.Node {
	if len(nodes) == 0 {
		return []flow.Node{}
	}
	opts = opts.withDefaults()

	index := flow.NodeIndex(nodes)
	successors := make(map[string][]string, len(nodes))
	predecessors := make(map[string][]string, len(nodes))
	inDegree := make(map[string]int, len(nodes))

	for _, e := range edges {
		if _, ok := index[e.Source]; !ok {
			continue
		}
		if _, ok := index[e.Target]; !ok {
			continue
		}
		successors[e.Source] = append(successors[e.Source], e.Target)
		predecessors[e.Target] = append(predecessors[e.Target], e.Source)
		inDegree[e.Target]++
	}

	ranks := assignRanks(nodes, successors, inDegree)

	// Group by rank in input order, then refine the within-rank order.
	maxRank := 0
	for _, r := range ranks {
		maxRank = max(maxRank, r)
	}
	order := make([][]string, maxRank+1)
	for _, n := range nodes {
		r := ranks[n.ID]
		order[r] = append(order[r], n.ID)
	}
	orderByBarycenter(order, successors, predecessors)

	// Rank index runs along the primary axis, within-rank position along
	// the secondary axis. TB/BT spread ranks vertically, LR/RL horizontally.
	vertical := opts.Direction == DirectionTB || opts.Direction == DirectionBT
	reversed := opts.Direction == DirectionBT || opts.Direction == DirectionRL

	primStep := opts.RankSep + opts.NodeHeight
	secStep := opts.NodeSep + opts.NodeWidth
	if !vertical {
		primStep = opts.RankSep + opts.NodeWidth
		secStep = opts.NodeSep + opts.NodeHeight
	}

	centers := make(map[string]flow.Position, len(nodes))
	for r, ids := range order {
		prim := float64(r) * primStep
		if reversed {
			prim = -prim
		}
		for i, id := range ids {
			sec := (float64(i) - float64(len(ids)-1)/2) * secStep
			if vertical {
				centers[id] = flow.Position{X: sec, Y: prim}
			} else {
				centers[id] = flow.Position{X: prim, Y: sec}
			}
		}
	}

	// Center → top-left corner, then shift the whole frame to the margin.
	minX, minY := math.Inf(1), math.Inf(1)
	for _, c := range centers {
		minX = math.Min(minX, c.X-opts.NodeWidth/2)
		minY = math.Min(minY, c.Y-opts.NodeHeight/2)
	}

	out := flow.CloneNodes(nodes)
	for i := range out {
		c := centers[out[i].ID]
		out[i].Position = &flow.Position{
			X: c.X - opts.NodeWidth/2 - minX + layoutMargin,
			Y: c.Y - opts.NodeHeight/2 - minY + layoutMargin,
		}
	}
	return out
}

// assignRanks computes longest-path-from-roots ranks with a Kahn traversal.
// Cycle members are never released and keep the default rank 0.
func assignRanks(nodes []flow.Node, successors map[string][]string, inDegree map[string]int) map[string]int {
	remaining := make(map[string]int, len(nodes))
	ranks := make(map[string]int, len(nodes))
	var queue []string

	for _, n := range nodes {
		remaining[n.ID] = inDegree[n.ID]
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, succ := range successors[curr] {
			if r := ranks[curr] + 1; r > ranks[succ] {
				ranks[succ] = r
			}
			remaining[succ]--
			if remaining[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	return ranks
}

// orderByBarycenter refines the within-rank order in place with alternating
// downward and upward barycenter sweeps. A node's sort key is the mean
// position of its neighbors in the adjacent rank; nodes without neighbors
// keep their current position. Two full passes are enough at editor scale.
func orderByBarycenter(order [][]string, successors, predecessors map[string][]string) {
	const sweeps = 2

	for s := 0; s < sweeps; s++ {
		for r := 1; r < len(order); r++ {
			sortRank(order[r], order[r-1], predecessors)
		}
		for r := len(order) - 2; r >= 0; r-- {
			sortRank(order[r], order[r+1], successors)
		}
	}
}

func sortRank(rank, adjacent []string, neighbors map[string][]string) {
	pos := make(map[string]int, len(adjacent))
	for i, id := range adjacent {
		pos[id] = i
	}

	keys := make(map[string]float64, len(rank))
	for i, id := range rank {
		sum, count := 0.0, 0
		for _, nb := range neighbors[id] {
			if p, ok := pos[nb]; ok {
				sum += float64(p)
				count++
			}
		}
		if count == 0 {
			keys[id] = float64(i)
		} else {
			keys[id] = sum / float64(count)
		}
	}

	sort.SliceStable(rank, func(i, j int) bool {
		return keys[rank[i]] < keys[rank[j]]
	})
}
