package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ComputerConnection/flowgrid/pkg/flow"
)

// validateCommand creates the validate command for cycle-checking graphs.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [graph.json]",
		Short: "Check a workflow graph for cycles and print execution levels",
		Long: `Check a workflow graph for structural problems.

Validation rejects duplicate or empty node IDs, edges that reference
unknown nodes, and dependency cycles. For valid graphs the execution
levels are printed: each level is a batch of agents that can run in
parallel once every earlier level has finished.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(input string) error {
	g, err := flow.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	topo, err := flow.NewTopology(g.Nodes, g.Edges)
	if err != nil {
		printError("Graph is invalid")
		printDetail("%v", err)
		return err
	}

	levels, err := topo.ExecutionLevels()
	if err != nil {
		printError("Graph is invalid")
		printDetail("%v", err)
		return err
	}

	printSuccess("Graph is valid")
	printStats(len(g.Nodes), len(g.Edges), false)
	printNewline()
	for i, level := range levels {
		printKeyValue(fmt.Sprintf("level %d", i), strings.Join(level, ", "))
	}

	return nil
}
