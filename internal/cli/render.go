package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
	"github.com/ComputerConnection/flowgrid/pkg/layout"
	"github.com/ComputerConnection/flowgrid/pkg/pipeline"
)

// renderCommand creates the render command for producing image artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a workflow graph to SVG, PNG, DOT, or JSON",
		Long: `Render a workflow graph to image or data formats.

When the input graph already carries positions (the output of 'layout'),
those positions are pinned in the rendered image. Unpositioned graphs are
laid out first using the selected preset.

Formats: svg (default), png, dot, json. Multiple formats may be given
comma-separated, e.g. -f svg,png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formats)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output basename (default: input basename)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "svg", "comma-separated output formats: svg, png, dot, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "layout preset for unpositioned graphs (default: dagre)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include agent roles in node labels")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender loads the graph, runs the pipeline, and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := flow.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	// Positioned graphs render as-is unless a preset is forced.
	if opts.Preset == "" && allPlaced(g) {
		opts.Preset = string(layout.PresetManual)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := runner.Execute(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	return nil
}

func allPlaced(g flow.Graph) bool {
	if len(g.Nodes) == 0 {
		return false
	}
	for _, n := range g.Nodes {
		if !n.Placed() {
			return false
		}
	}
	return true
}
