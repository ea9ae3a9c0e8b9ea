package layout

import (
	"math"
	"testing"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

func TestForce_EmptyInput(t *testing.T) {
	got := Force(nil, nil, 10)
	if len(got) != 0 {
		t.Errorf("Force(empty) returned %d nodes, want 0", len(got))
	}
}

func TestForce_SingleNode(t *testing.T) {
	got := Force([]flow.Node{{ID: "only"}}, nil, 50)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	p := got[0].Position
	if p == nil {
		t.Fatal("single node left unpositioned")
	}
	// With no pairs and no edges the node never moves; normalization pins
	// it at the margin.
	if p.X != 50 || p.Y != 50 {
		t.Errorf("position = (%v, %v), want (50, 50)", p.X, p.Y)
	}
}

func TestForce_Determinism(t *testing.T) {
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []flow.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
		{Source: "a", Target: "d"},
	}

	first := Force(nodes, edges, 100)
	second := Force(nodes, edges, 100)

	for i := range first {
		p, q := first[i].Position, second[i].Position
		if p.X != q.X || p.Y != q.Y {
			t.Errorf("node %q: run 1 = (%v, %v), run 2 = (%v, %v)",
				first[i].ID, p.X, p.Y, q.X, q.Y)
		}
	}
}

func TestForce_RepulsionPreventsCollapse(t *testing.T) {
	// No edges at all: only repulsion acts, so no two nodes may end up
	// at the same point.
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}

	got := Force(nodes, nil, 100)

	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			pi, pj := got[i].Position, got[j].Position
			dist := math.Hypot(pi.X-pj.X, pi.Y-pj.Y)
			if dist <= 0 {
				t.Errorf("nodes %q and %q collapsed to the same point",
					got[i].ID, got[j].ID)
			}
		}
	}
}

func TestForce_SeedsFromExistingPositions(t *testing.T) {
	// Two far-apart pinned nodes connected by a spring must end up closer
	// than they started: the existing positions were used as seeds.
	nodes := []flow.Node{
		{ID: "a", Position: &flow.Position{X: 0, Y: 0}},
		{ID: "b", Position: &flow.Position{X: 10000, Y: 0}},
	}
	edges := []flow.Edge{{Source: "a", Target: "b"}}

	got := Force(nodes, edges, 100)

	dist := math.Hypot(
		got[0].Position.X-got[1].Position.X,
		got[0].Position.Y-got[1].Position.Y,
	)
	if dist >= 10000 {
		t.Errorf("spring did not pull seeded nodes together: dist = %v", dist)
	}
}

func TestForce_NormalizedToMargin(t *testing.T) {
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []flow.Edge{{Source: "a", Target: "b"}}

	got := Force(nodes, edges, 100)

	minX, minY := math.Inf(1), math.Inf(1)
	for _, n := range got {
		minX = math.Min(minX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
	}
	if math.Abs(minX-50) > 1e-9 || math.Abs(minY-50) > 1e-9 {
		t.Errorf("layout min = (%v, %v), want (50, 50)", minX, minY)
	}
}

func TestForce_IterationsCapped(t *testing.T) {
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []flow.Edge{{Source: "a", Target: "b"}}

	// The simulation is deterministic, so a request beyond the cap must
	// produce exactly the capped run.
	capped := Force(nodes, edges, MaxIterations)
	beyond := Force(nodes, edges, MaxIterations+500)

	for i := range capped {
		p, q := capped[i].Position, beyond[i].Position
		if p.X != q.X || p.Y != q.Y {
			t.Errorf("node %q: capped = (%v, %v), beyond cap = (%v, %v)",
				capped[i].ID, p.X, p.Y, q.X, q.Y)
		}
	}
}

func TestForce_CoincidentSeedsStayFinite(t *testing.T) {
	nodes := []flow.Node{
		{ID: "a", Position: &flow.Position{X: 100, Y: 100}},
		{ID: "b", Position: &flow.Position{X: 100, Y: 100}},
	}

	got := Force(nodes, nil, 100)

	// The dist clamp keeps the force finite for coincident nodes, so the
	// simulation must stay numerically sound.
	for _, n := range got {
		if math.IsNaN(n.Position.X) || math.IsNaN(n.Position.Y) {
			t.Fatalf("node %q has NaN position", n.ID)
		}
	}
}
