package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
	"github.com/ComputerConnection/flowgrid/pkg/pipeline"
)

// layoutCommand creates the layout command for positioning workflow graphs.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output      string
		noCache     bool
		interactive bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a workflow graph",
		Long: `Compute node positions for a workflow graph.

The layout command takes a graph.json file describing agent nodes and their
dependency edges, runs the selected layout preset, and writes the same graph
back with every node positioned. The output can be rendered to SVG/PNG using
the 'render' command.

Presets: dagre (layered, default), force (force-directed), timeline
(execution levels left to right), manual (keep existing positions).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				preset, err := pickPreset(opts.Preset)
				if err != nil {
					return err
				}
				opts.Preset = preset
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the preset interactively")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", opts.Preset, "layout preset: dagre (default), force, timeline, manual")
	cmd.Flags().StringVar(&opts.Direction, "direction", opts.Direction, "dagre direction: TB (default), LR, BT, RL")
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", opts.NodeWidth, "node box width (dagre)")
	cmd.Flags().Float64Var(&opts.NodeHeight, "node-height", opts.NodeHeight, "node box height (dagre)")
	cmd.Flags().Float64Var(&opts.RankSep, "rank-sep", opts.RankSep, "separation between ranks (dagre)")
	cmd.Flags().Float64Var(&opts.NodeSep, "node-sep", opts.NodeSep, "separation within a rank (dagre)")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", opts.Iterations, "simulation iterations (force)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "recompute even when cached")

	return cmd
}

// runLayout loads the graph, computes positions, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := flow.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Preset))
	spinner.Start()

	laid, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := flow.WriteGraphFile(laid, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(laid.Nodes), len(laid.Edges), cacheHit)
	printNewline()
	printNextStep("Render", "flowgrid render "+outputPath)

	return nil
}
