package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
	"github.com/ComputerConnection/flowgrid/pkg/observability"
	"github.com/ComputerConnection/flowgrid/pkg/render"
)

// renderFormats runs the render stage without caching. The graph is
// expected to carry positions already; unplaced nodes fall back to the
// dot engine's own placement.
func renderFormats(ctx context.Context, g flow.Graph, opts Options) (map[string][]byte, error) {
	start := time.Now()
	observability.Layout().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		artifacts[format], err = renderFormat(g, format, opts)
		if err != nil {
			observability.Layout().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
	}

	observability.Layout().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

func renderFormat(g flow.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return flow.MarshalGraph(g)
	case FormatDOT:
		return []byte(render.ToDOT(g, renderOpts(g, opts))), nil
	case FormatSVG:
		return render.RenderSVG(render.ToDOT(g, renderOpts(g, opts)))
	case FormatPNG:
		return render.RenderPNG(render.ToDOT(g, renderOpts(g, opts)))
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// renderOpts pins node coordinates when every node carries a position,
// so the rendered image reproduces the computed layout.
func renderOpts(g flow.Graph, opts Options) render.Options {
	pinned := len(g.Nodes) > 0
	for _, n := range g.Nodes {
		if !n.Placed() {
			pinned = false
			break
		}
	}
	return render.Options{Detailed: opts.Detailed, Pinned: pinned}
}
