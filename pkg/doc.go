// Package pkg provides the core libraries for flowgrid workflow layout.
//
// # Overview
//
// Flowgrid arranges multi-agent workflow graphs on a canvas so that
// editors and dashboards can display them without hand-placing nodes.
// The pkg directory is organized into these areas:
//
//  1. [flow] - Graph model (nodes, edges, topology, serialization)
//  2. [layout] - Layout algorithms (dagre, force, timeline, manual)
//  3. [render] - DOT generation and Graphviz image rendering
//  4. [pipeline] - Orchestration (layout → render) with caching
//  5. [cache], [store], [config] - Infrastructure backends
//
// # Architecture
//
// The typical data flow through flowgrid:
//
//	Workflow Graph (JSON)
//	         ↓
//	    [flow] package (parse + validate topology)
//	         ↓
//	    [layout] package (assign node positions)
//	         ↓
//	    [render] package (DOT, SVG, PNG output)
//
// The [pipeline] package wires the stages together behind a cache, and
// internal/cli and internal/server expose them to users.
package pkg
