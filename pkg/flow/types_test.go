package flow

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestGraphRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "plan", Label: "Planner", Role: "architect"},
			{ID: "build", Position: &Position{X: 120, Y: 240}},
		},
		Edges: []Edge{{Source: "plan", Target: "build"}},
	}

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}

	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error = %v", err)
	}

	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("round trip: %d nodes, %d edges, want 2 and 1",
			got.NodeCount(), got.EdgeCount())
	}
	n, ok := got.Node("build")
	if !ok {
		t.Fatal("node build lost in round trip")
	}
	if n.Position == nil || n.Position.X != 120 || n.Position.Y != 240 {
		t.Errorf("position lost: %+v", n.Position)
	}
	n, _ = got.Node("plan")
	if n.Position != nil {
		t.Errorf("absent position materialized: %+v", n.Position)
	}
}

func TestUnmarshalGraph_CanvasFormat(t *testing.T) {
	data := []byte(`{
		"nodes": [
			{"id": "plan", "position": {"x": 10, "y": 20},
			 "data": {"label": "Planner", "agentRole": "architect"}},
			{"id": "build", "label": "Builder",
			 "data": {"label": "ignored", "agentRole": "coder"}}
		],
		"edges": [{"id": "e1", "source": "plan", "target": "build"}]
	}`)

	g, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error = %v", err)
	}

	n, _ := g.Node("plan")
	if n.Label != "Planner" || n.Role != "architect" {
		t.Errorf("nested data not lifted: label=%q role=%q", n.Label, n.Role)
	}
	if n.Position == nil || n.Position.X != 10 {
		t.Errorf("canvas position lost: %+v", n.Position)
	}

	// Flat fields win over the nested payload.
	n, _ = g.Node("build")
	if n.Label != "Builder" {
		t.Errorf("flat label overridden: %q", n.Label)
	}
	if n.Role != "coder" {
		t.Errorf("role not filled from data: %q", n.Role)
	}

	if g.EdgeCount() != 1 || g.Edges[0].Source != "plan" {
		t.Errorf("edges mis-decoded: %+v", g.Edges)
	}
}

func TestGraphFileIO(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.json")

	g := Graph{Nodes: []Node{{ID: "a"}}, Edges: nil}
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile() error = %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error = %v", err)
	}
	if got.NodeCount() != 1 || got.Nodes[0].ID != "a" {
		t.Errorf("read back %+v", got)
	}

	if _, err := ReadGraphFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadGraphFile(missing) = nil error, want error")
	}
}

func TestReadGraph_MalformedJSON(t *testing.T) {
	if _, err := ReadGraph(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Error("ReadGraph(malformed) = nil error, want error")
	}
}

func TestCloneNodes_DoesNotAlias(t *testing.T) {
	orig := []Node{{ID: "a", Position: &Position{X: 1, Y: 2}}}

	clone := CloneNodes(orig)
	clone[0].Position.X = 99

	if orig[0].Position.X != 1 {
		t.Error("CloneNodes aliased the original Position")
	}
}

func TestNodeDisplayLabel(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Node{ID: "a", Label: "Agent A"}, "Agent A"},
		{Node{ID: "a"}, "a"},
	}
	for _, tt := range tests {
		if got := tt.node.DisplayLabel(); got != tt.want {
			t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
		}
	}
}
