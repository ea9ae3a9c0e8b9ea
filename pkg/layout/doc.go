// Package layout computes 2D coordinates for workflow graph nodes given only
// their topology.
//
// # Overview
//
// The editor canvas needs a concrete position for every node, but a workflow
// graph arrives as bare node and edge lists. This package provides three
// placement algorithms plus a passthrough, selected by a named preset:
//
//   - [PresetDagre]: hierarchical layered arrangement (Sugiyama-style)
//   - [PresetForce]: iterative spring/repulsion simulation
//   - [PresetTimeline]: left-to-right by topological execution level
//   - [PresetManual]: identity, the user's own positions are kept
//
// All algorithms are pure functions: they never mutate their input and
// return a fresh node slice with every position populated. They are
// deterministic for a fixed input ordering, synchronous, and CPU-bound.
//
// # Degraded Inputs
//
// The engine recognizes no error kinds. Dangling edges (endpoints missing
// from the node list) are skipped during traversal. Cyclic graphs never
// crash: the timeline layout leaves cycle members at level 0, and the
// hierarchical rank assignment leaves them at rank 0. Callers that need a
// strict acyclicity guarantee should validate with flow.Topology first.
//
// # Scale
//
// The force simulation's all-pairs repulsion is O(n²) per iteration and
// dominates cost beyond a few hundred nodes. Graph sizes in the editor are
// tens of nodes, so no spatial acceleration structure is used.
package layout
