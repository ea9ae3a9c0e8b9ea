package flow

import (
	"errors"
	"testing"
)

func TestNewTopology_RejectsBadGraphs(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		edges   []Edge
		wantErr error
	}{
		{
			name:    "EmptyNodeID",
			nodes:   []Node{{ID: ""}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "DuplicateNodeID",
			nodes:   []Node{{ID: "a"}, {ID: "a"}},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "DanglingTarget",
			nodes:   []Node{{ID: "a"}},
			edges:   []Edge{{Source: "a", Target: "ghost"}},
			wantErr: ErrUnknownEdgeEndpoint,
		},
		{
			name:    "DanglingSource",
			nodes:   []Node{{ID: "a"}},
			edges:   []Edge{{Source: "ghost", Target: "a"}},
			wantErr: ErrUnknownEdgeEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTopology(tt.nodes, tt.edges)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTopology() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTopology_Adjacency(t *testing.T) {
	topo, err := NewTopology(
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]Edge{{Source: "a", Target: "b"}, {Source: "a", Target: "c"}},
	)
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}

	if got := topo.Successors("a"); len(got) != 2 {
		t.Errorf("Successors(a) = %v, want 2 entries", got)
	}
	if got := topo.InDegree("b"); got != 1 {
		t.Errorf("InDegree(b) = %d, want 1", got)
	}
	if got := topo.Sources(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Sources() = %v, want [a]", got)
	}
	if got := topo.Sinks(); len(got) != 2 {
		t.Errorf("Sinks() = %v, want 2 entries", got)
	}
}

func TestTopology_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edges   []Edge
		wantErr bool
	}{
		{"Acyclic", []Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}}, false},
		{"TwoCycle", []Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}}, true},
		{"Triangle", []Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
			{Source: "c", Target: "a"},
		}, true},
		{"SelfLoop", []Edge{{Source: "a", Target: "a"}}, true},
		{"NoEdges", nil, false},
	}

	nodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := NewTopology(nodes, tt.edges)
			if err != nil {
				t.Fatalf("NewTopology() error = %v", err)
			}
			err = topo.Validate()
			if tt.wantErr && !errors.Is(err, ErrGraphHasCycle) {
				t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTopology_ExecutionLevels(t *testing.T) {
	// Diamond: a fans out to b and c, which join at d.
	topo, err := NewTopology(
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]Edge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "d"},
			{Source: "c", Target: "d"},
		},
	)
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}

	levels, err := topo.ExecutionLevels()
	if err != nil {
		t.Fatalf("ExecutionLevels() error = %v", err)
	}

	want := [][]string{{"a"}, {"b", "c"}, {"d"}}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for i := range want {
		if len(levels[i]) != len(want[i]) {
			t.Errorf("level %d = %v, want %v", i, levels[i], want[i])
		}
	}
}

func TestTopology_ExecutionLevelsCycle(t *testing.T) {
	topo, err := NewTopology(
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}},
	)
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}

	if _, err := topo.ExecutionLevels(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("ExecutionLevels() = %v, want ErrGraphHasCycle", err)
	}
}
