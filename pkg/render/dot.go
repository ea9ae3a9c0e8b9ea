package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the agent role in node labels.
	// When false, only the display label is shown.
	Detailed bool

	// Pinned emits node positions (when present) as fixed neato
	// coordinates so Graphviz reproduces the layout engine's placement.
	Pinned bool
}

// pointsPerPixel converts canvas pixels to Graphviz points for pinned
// positions. Graphviz's y axis grows upward, so pinned y is negated.
const pointsPerPixel = 0.75

// ToDOT converts a workflow graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g flow.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph workflow {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
		buf.WriteString("  ranksep=0.5;\n")
		buf.WriteString("  nodesep=0.3;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := fmtAttrs(n, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n flow.Node, opts Options) []string {
	label := n.DisplayLabel()
	if opts.Detailed && n.Role != "" {
		label = label + "\n" + n.Role
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if opts.Pinned && n.Position != nil {
		attrs = append(attrs, fmt.Sprintf("pos=\"%.2f,%.2f!\", pin=true",
			n.Position.X*pointsPerPixel, -n.Position.Y*pointsPerPixel))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
