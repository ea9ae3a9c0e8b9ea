package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidGraph, "bad node %q", "x")
	if got, want := plain.Error(), `INVALID_GRAPH: bad node "x"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeStorage, fmt.Errorf("disk full"), "save graph")
	if got, want := wrapped.Error(), "STORAGE_ERROR: save graph: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrCodeGraphCycle, "cycle through a"))

	if !Is(err, ErrCodeGraphCycle) {
		t.Error("Is() did not find code through wrapping")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() matched the wrong code")
	}
	if got := GetCode(err); got != ErrCodeGraphCycle {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeGraphCycle)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeCache, cause, "redis get")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}
}

func TestValidateGraph(t *testing.T) {
	tests := []struct {
		name     string
		graph    flow.Graph
		wantCode Code
	}{
		{
			name:     "Valid",
			graph:    flow.Graph{Nodes: []flow.Node{{ID: "a"}, {ID: "b"}}},
			wantCode: "",
		},
		{
			name:     "Empty",
			graph:    flow.Graph{},
			wantCode: "",
		},
		{
			name:     "EmptyID",
			graph:    flow.Graph{Nodes: []flow.Node{{ID: ""}}},
			wantCode: ErrCodeInvalidGraph,
		},
		{
			name:     "DuplicateID",
			graph:    flow.Graph{Nodes: []flow.Node{{ID: "a"}, {ID: "a"}}},
			wantCode: ErrCodeInvalidGraph,
		},
		{
			name:     "ControlCharacter",
			graph:    flow.Graph{Nodes: []flow.Node{{ID: "a\x00b"}}},
			wantCode: ErrCodeInvalidGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraph(tt.graph)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateGraph() = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateGraph() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateGraph_DanglingEdgesPermitted(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{{ID: "a"}},
		Edges: []flow.Edge{{Source: "a", Target: "ghost"}},
	}
	if err := ValidateGraph(g); err != nil {
		t.Errorf("ValidateGraph() rejected dangling edge: %v", err)
	}
}
