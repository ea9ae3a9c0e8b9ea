package layout

import (
	"testing"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

func positionOf(t *testing.T, nodes []flow.Node, id string) flow.Position {
	t.Helper()
	for _, n := range nodes {
		if n.ID == id {
			if n.Position == nil {
				t.Fatalf("node %q has no position", id)
			}
			return *n.Position
		}
	}
	t.Fatalf("node %q not found", id)
	return flow.Position{}
}

func TestTimeline_ChainScenario(t *testing.T) {
	nodes, edges := chainGraph()

	got := Timeline(nodes, edges)

	// A simple chain: levels 0, 1, 2 at x = 100, 400, 700, all on one row.
	tests := []struct {
		id    string
		wantX float64
	}{
		{"a", 100},
		{"b", 400},
		{"c", 700},
	}

	ya := positionOf(t, got, "a").Y
	for _, tt := range tests {
		p := positionOf(t, got, tt.id)
		if p.X != tt.wantX {
			t.Errorf("node %q: x = %v, want %v", tt.id, p.X, tt.wantX)
		}
		if p.Y != ya {
			t.Errorf("node %q: y = %v, want %v (single-member levels share y)", tt.id, p.Y, ya)
		}
	}
}

func TestTimeline_LevelInvariant(t *testing.T) {
	// Diamond with a long arm: level(v) must exceed level(u) for every
	// edge u→v, using the longest path to each node.
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []flow.Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "c"},
		{Source: "b", Target: "d"},
		{Source: "c", Target: "d"},
	}

	got := Timeline(nodes, edges)

	for _, e := range edges {
		src := positionOf(t, got, e.Source)
		dst := positionOf(t, got, e.Target)
		if dst.X < src.X+timelineHorizontalGap {
			t.Errorf("edge %s→%s: target x %v not at least one level past source x %v",
				e.Source, e.Target, dst.X, src.X)
		}
	}
}

func TestTimeline_LongestPathWins(t *testing.T) {
	// d is reachable in one hop from a but also via a→b→c→d; it must sit
	// at level 3, not level 1.
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []flow.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
		{Source: "c", Target: "d"},
		{Source: "a", Target: "d"},
	}

	got := Timeline(nodes, edges)

	if x := positionOf(t, got, "d").X; x != 100+3*300 {
		t.Errorf("node d: x = %v, want %v", x, 100+3*300)
	}
}

func TestTimeline_VerticalCentering(t *testing.T) {
	// Three roots in one level: spaced 120 apart, centered around y = 200.
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := Timeline(nodes, nil)

	wantY := []float64{80, 200, 320} // (3-1)*120/-2 + 200 = 80, then +120 steps
	for i, n := range got {
		if n.Position.Y != wantY[i] {
			t.Errorf("node %q: y = %v, want %v", n.ID, n.Position.Y, wantY[i])
		}
		if n.Position.X != 100 {
			t.Errorf("node %q: x = %v, want 100", n.ID, n.Position.X)
		}
	}
}

func TestTimeline_CycleFallsBackToLevelZero(t *testing.T) {
	// b and c form a cycle and are never released by the traversal; they
	// default to level 0 instead of being left unpositioned.
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []flow.Edge{
		{Source: "b", Target: "c"},
		{Source: "c", Target: "b"},
	}

	got := Timeline(nodes, edges)

	for _, n := range got {
		if n.Position == nil {
			t.Fatalf("node %q left unpositioned", n.ID)
		}
		if n.Position.X != 100 {
			t.Errorf("node %q: x = %v, want 100 (level 0)", n.ID, n.Position.X)
		}
	}
}

func TestTimeline_SourcesAtLevelZero(t *testing.T) {
	nodes := []flow.Node{{ID: "root1"}, {ID: "root2"}, {ID: "child"}}
	edges := []flow.Edge{
		{Source: "root1", Target: "child"},
		{Source: "root2", Target: "child"},
	}

	got := Timeline(nodes, edges)

	if x := positionOf(t, got, "root1").X; x != 100 {
		t.Errorf("root1 x = %v, want 100", x)
	}
	if x := positionOf(t, got, "root2").X; x != 100 {
		t.Errorf("root2 x = %v, want 100", x)
	}
	if x := positionOf(t, got, "child").X; x != 400 {
		t.Errorf("child x = %v, want 400", x)
	}
}
