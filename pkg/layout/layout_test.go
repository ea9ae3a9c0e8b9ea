package layout

import (
	"testing"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

func chainGraph() ([]flow.Node, []flow.Edge) {
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []flow.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}
	return nodes, edges
}

func idSet(nodes []flow.Node) map[string]bool {
	s := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		s[n.ID] = true
	}
	return s
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		want Preset
	}{
		{"dagre", PresetDagre},
		{"force", PresetForce},
		{"timeline", PresetTimeline},
		{"manual", PresetManual},
		{"", PresetManual},
		{"circular", PresetManual},
	}

	for _, tt := range tests {
		if got := ParsePreset(tt.name); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestApply_IDPreservation(t *testing.T) {
	nodes, edges := chainGraph()
	want := idSet(nodes)

	for _, preset := range Presets() {
		got := Apply(preset, nodes, edges)
		if len(got) != len(nodes) {
			t.Errorf("Apply(%q) returned %d nodes, want %d", preset, len(got), len(nodes))
		}
		gotIDs := idSet(got)
		for id := range want {
			if !gotIDs[id] {
				t.Errorf("Apply(%q) lost node %q", preset, id)
			}
		}
	}
}

func TestApply_AllPositioned(t *testing.T) {
	nodes, edges := chainGraph()

	for _, preset := range []Preset{PresetDagre, PresetForce, PresetTimeline} {
		for _, n := range Apply(preset, nodes, edges) {
			if n.Position == nil {
				t.Errorf("Apply(%q) left node %q unpositioned", preset, n.ID)
			}
		}
	}
}

func TestApply_ManualIdentity(t *testing.T) {
	nodes := []flow.Node{
		{ID: "a", Position: &flow.Position{X: 10, Y: 20}},
		{ID: "b"}, // no position - must stay absent
	}

	got := Apply(PresetManual, nodes, nil)

	if got[0].Position == nil || got[0].Position.X != 10 || got[0].Position.Y != 20 {
		t.Errorf("manual moved node a: %+v", got[0].Position)
	}
	if got[1].Position != nil {
		t.Errorf("manual invented a position for node b: %+v", got[1].Position)
	}
}

func TestApply_UnknownPresetFallsBackToManual(t *testing.T) {
	nodes := []flow.Node{{ID: "a", Position: &flow.Position{X: 5, Y: 5}}}

	got := Apply(Preset("spiral"), nodes, nil)

	if got[0].Position == nil || got[0].Position.X != 5 || got[0].Position.Y != 5 {
		t.Errorf("unknown preset moved node: %+v", got[0].Position)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	nodes, edges := chainGraph()

	for _, preset := range []Preset{PresetDagre, PresetForce, PresetTimeline} {
		Apply(preset, nodes, edges)
		for _, n := range nodes {
			if n.Position != nil {
				t.Fatalf("Apply(%q) mutated input node %q", preset, n.ID)
			}
		}
	}
}

func TestApply_DanglingEdgeRobustness(t *testing.T) {
	nodes := []flow.Node{{ID: "a"}, {ID: "b"}}
	edges := []flow.Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "ghost"},
		{Source: "phantom", Target: "b"},
	}
	clean := []flow.Edge{{Source: "a", Target: "b"}}

	for _, preset := range []Preset{PresetDagre, PresetForce, PresetTimeline} {
		withDangling := Apply(preset, nodes, edges)
		withoutDangling := Apply(preset, nodes, clean)

		for i := range withDangling {
			got, want := withDangling[i].Position, withoutDangling[i].Position
			if got.X != want.X || got.Y != want.Y {
				t.Errorf("Apply(%q): dangling edge changed %q from (%v,%v) to (%v,%v)",
					preset, withDangling[i].ID, want.X, want.Y, got.X, got.Y)
			}
		}
	}
}

func TestApply_EmptyGraph(t *testing.T) {
	for _, preset := range Presets() {
		if got := Apply(preset, nil, nil); len(got) != 0 {
			t.Errorf("Apply(%q) on empty graph returned %d nodes", preset, len(got))
		}
	}
}
