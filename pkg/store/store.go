// Package store persists workflow graphs.
//
// Two backends are provided: an in-memory store for tests and
// single-process use, and a MongoDB store for shared deployments.
// Both implement [GraphStore] and assign UUIDs to saved graphs.
package store

import (
	"context"
	"time"

	"github.com/ComputerConnection/flowgrid/pkg/errors"
	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// ErrNotFound is returned when a graph ID does not exist.
var ErrNotFound = errors.New(errors.ErrCodeGraphNotFound, "graph not found")

// Record is a stored workflow graph with its metadata.
type Record struct {
	ID        string     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Graph     flow.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// GraphStore persists workflow graphs keyed by UUID.
type GraphStore interface {
	// Create saves a new graph and returns the stored record with its
	// generated ID.
	Create(ctx context.Context, name string, g flow.Graph) (Record, error)

	// Get returns the record for id, or [ErrNotFound].
	Get(ctx context.Context, id string) (Record, error)

	// Update replaces the graph for id, or returns [ErrNotFound].
	Update(ctx context.Context, id string, name string, g flow.Graph) (Record, error)

	// Delete removes the record for id, or returns [ErrNotFound].
	Delete(ctx context.Context, id string) error

	// List returns all records ordered by creation time.
	List(ctx context.Context) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
