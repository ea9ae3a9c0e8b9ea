package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// MemoryStore is an in-process GraphStore. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

var _ GraphStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Create(_ context.Context, name string, g flow.Graph) (Record, error) {
	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		Name:      name,
		Graph:     cloneGraph(g),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	return rec, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Graph = cloneGraph(rec.Graph)
	return rec, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, name string, g flow.Graph) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Name = name
	rec.Graph = cloneGraph(g)
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	recs := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		rec.Graph = cloneGraph(rec.Graph)
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].ID < recs[j].ID
		}
		return recs[i].CreatedAt.Before(recs[j].CreatedAt)
	})
	return recs, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

// cloneGraph deep-copies a graph so callers cannot mutate stored state.
func cloneGraph(g flow.Graph) flow.Graph {
	return flow.Graph{
		Nodes: flow.CloneNodes(g.Nodes),
		Edges: append([]flow.Edge(nil), g.Edges...),
	}
}
