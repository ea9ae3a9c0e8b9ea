package pipeline

import (
	"context"
	"time"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
	"github.com/ComputerConnection/flowgrid/pkg/layout"
	"github.com/ComputerConnection/flowgrid/pkg/observability"
)

// computeLayout runs the layout stage without caching.
//
// The preset dispatch mirrors [layout.Apply] but threads the
// pipeline's geometry options through to the algorithms instead of
// using package defaults.
func computeLayout(ctx context.Context, g flow.Graph, opts Options) flow.Graph {
	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, opts.Preset, len(g.Nodes))

	var nodes []flow.Node
	switch layout.Preset(opts.Preset) {
	case layout.PresetDagre:
		nodes = layout.Hierarchical(g.Nodes, g.Edges, opts.HierarchicalOptions())
	case layout.PresetForce:
		nodes = layout.Force(g.Nodes, g.Edges, opts.Iterations)
	case layout.PresetTimeline:
		nodes = layout.Timeline(g.Nodes, g.Edges)
	default:
		nodes = layout.Apply(layout.PresetManual, g.Nodes, g.Edges)
	}

	observability.Layout().OnLayoutComplete(ctx, opts.Preset, time.Since(start), nil)
	return flow.Graph{Nodes: nodes, Edges: g.Edges}
}
