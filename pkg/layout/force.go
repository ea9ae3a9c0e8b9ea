package layout

import (
	"math"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// Force simulation constants. Tuned for graphs of tens of nodes on an
// 800×600 canvas; the physical model is a Hookean spring per edge plus
// inverse-square repulsion between every node pair.
const (
	// DefaultIterations is the simulation length used by [Apply].
	DefaultIterations = 100

	// MaxIterations bounds the simulation length. Each iteration costs
	// O(n²), so an uncapped count lets one request burn CPU without
	// limit; requests beyond the cap are truncated to it.
	MaxIterations = 10000

	repulsionConstant     = 5000.0
	attractionCoefficient = 0.05
	springRestLength      = 150.0
	velocityDamping       = 0.9

	seedCenterX   = 400.0
	seedCenterY   = 300.0
	seedMinRadius = 200.0

	layoutMargin = 50.0
)

// Force returns nodes placed by an iterative spring/repulsion simulation.
//
// Starting positions come from each node's existing Position, or, if absent,
// from a circular seed around (400, 300) whose radius grows with the node
// count. Forces cool linearly: iteration t applies alpha = 1 − t/iterations
// to both repulsion and attraction, so early iterations untangle and late
// iterations settle.
//
// The result is a pure function of input node order, edge order, and the
// iteration count - there is no randomness, so identical calls are
// bit-for-bit reproducible. Dangling edges are skipped. An empty node list
// returns an empty slice without entering the simulation.
func Force(nodes []flow.Node, edges []flow.Edge, iterations int) []flow.Node {
	if len(nodes) == 0 {
		return []flow.Node{}
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if iterations > MaxIterations {
		iterations = MaxIterations
	}

	n := len(nodes)
	px := make([]float64, n)
	py := make([]float64, n)
	vx := make([]float64, n)
	vy := make([]float64, n)

	radius := math.Max(seedMinRadius, float64(n)*30)
	for i, node := range nodes {
		if node.Position != nil {
			px[i] = node.Position.X
			py[i] = node.Position.Y
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		px[i] = seedCenterX + radius*math.Cos(angle)
		py[i] = seedCenterY + radius*math.Sin(angle)
	}

	index := flow.NodeIndex(nodes)

	for t := 0; t < iterations; t++ {
		alpha := 1 - float64(t)/float64(iterations)

		// All-pairs repulsion. The dist clamp keeps coincident nodes from
		// producing a singular force; their first push direction is
		// arbitrary but bounded.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dx := px[i] - px[j]
				dy := py[i] - py[j]
				dist := math.Max(1, math.Hypot(dx, dy))
				force := repulsionConstant * alpha / (dist * dist)
				vx[i] += dx / dist * force
				vy[i] += dy / dist * force
			}
		}

		// Spring attraction along edges toward the rest length.
		for _, e := range edges {
			si, ok := index[e.Source]
			if !ok {
				continue
			}
			ti, ok := index[e.Target]
			if !ok {
				continue
			}
			dx := px[ti] - px[si]
			dy := py[ti] - py[si]
			dist := math.Max(1, math.Hypot(dx, dy))
			force := (dist - springRestLength) * attractionCoefficient * alpha
			vx[si] += dx / dist * force
			vy[si] += dy / dist * force
			vx[ti] -= dx / dist * force
			vy[ti] -= dy / dist * force
		}

		for i := 0; i < n; i++ {
			px[i] += vx[i]
			py[i] += vy[i]
			vx[i] *= velocityDamping
			vy[i] *= velocityDamping
		}
	}

	// Translate so the layout starts at the margin. Pure shift, no scaling.
	minX, minY := px[0], py[0]
	for i := 1; i < n; i++ {
		minX = math.Min(minX, px[i])
		minY = math.Min(minY, py[i])
	}

	out := flow.CloneNodes(nodes)
	for i := range out {
		out[i].Position = &flow.Position{
			X: px[i] - minX + layoutMargin,
			Y: py[i] - minY + layoutMargin,
		}
	}
	return out
}
