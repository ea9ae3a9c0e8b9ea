// Package flow provides the shared graph model for multi-agent workflow
// graphs: nodes, edges, positions, and the canonical JSON wire format.
//
// # Overview
//
// A workflow graph is an ordered list of nodes and directed edges between
// node IDs. The editor frontend supplies graphs in this format, the layout
// engine (package layout) consumes them, and the HTTP API and CLI read and
// write them as JSON documents.
//
// # Core Types
//
//   - [Node], [Edge], [Position]: value types shared by every consumer
//   - [Graph]: the serialization format (nodes + edges)
//   - [Topology]: adjacency-indexed view for validation and traversal
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "plan", "label": "Planner", "role": "architect"}],
//	  "edges": [{"source": "plan", "target": "build"}]
//	}
//
// Common operations:
//
//	g, _ := flow.ReadGraphFile("workflow.json")
//	flow.WriteGraphFile(g, "out.json")
//	data, _ := flow.MarshalGraph(g)
//
// # Validation
//
// The layout engine itself never validates graph semantics - it degrades
// gracefully on dangling edges and cycles. Callers that need a strict
// contract build a [Topology] and run [Topology.Validate] or
// [Topology.ExecutionLevels] before handing the graph downstream.
//
// # Concurrency
//
// All types are plain values. Functions are safe for concurrent use as long
// as callers do not mutate a shared Graph while it is being read.
package flow
