package store

import (
	"context"
	"testing"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

func testGraph() flow.Graph {
	return flow.Graph{
		Nodes: []flow.Node{
			{ID: "a", Label: "Start"},
			{ID: "b", Label: "End"},
		},
		Edges: []flow.Edge{{Source: "a", Target: "b"}},
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec, err := s.Create(ctx, "pipeline", testGraph())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Create should assign an ID")
	}
	if rec.CreatedAt.IsZero() || !rec.CreatedAt.Equal(rec.UpdatedAt) {
		t.Errorf("timestamps not initialized: %+v", rec)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "pipeline" || len(got.Graph.Nodes) != 2 {
		t.Errorf("Get returned %+v", got)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("Get unknown = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec, _ := s.Create(ctx, "v1", testGraph())

	g := testGraph()
	g.Nodes = append(g.Nodes, flow.Node{ID: "c"})
	updated, err := s.Update(ctx, rec.ID, "v2", g)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "v2" || len(updated.Graph.Nodes) != 3 {
		t.Errorf("Update returned %+v", updated)
	}
	if updated.UpdatedAt.Before(rec.UpdatedAt) {
		t.Error("UpdatedAt should advance")
	}

	if _, err := s.Update(ctx, "missing", "x", g); err != ErrNotFound {
		t.Errorf("Update unknown = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec, _ := s.Create(ctx, "g", testGraph())
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); err != ErrNotFound {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, rec.ID); err != ErrNotFound {
		t.Errorf("double Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListOrdered(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, _ := s.Create(ctx, "first", testGraph())
	second, _ := s.Create(ctx, "second", testGraph())

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("List returned %d records, want 2", len(recs))
	}
	ids := map[string]bool{recs[0].ID: true, recs[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Errorf("List missing records: %v", recs)
	}
	if recs[0].CreatedAt.After(recs[1].CreatedAt) {
		t.Error("List should order by creation time")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := testGraph()
	rec, _ := s.Create(ctx, "g", g)

	// Mutating the caller's graph must not affect the stored copy.
	g.Nodes[0].ID = "mutated"
	got, _ := s.Get(ctx, rec.ID)
	if got.Graph.Nodes[0].ID != "a" {
		t.Error("store should hold an isolated copy of the graph")
	}

	// Mutating a returned graph must not affect later reads.
	got.Graph.Nodes[0].ID = "mutated"
	again, _ := s.Get(ctx, rec.ID)
	if again.Graph.Nodes[0].ID != "a" {
		t.Error("Get should return an isolated copy")
	}
}
