package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/pathfind"
)

func newCompareCmd() *cobra.Command {
	var grid gridOpts
	compareCmd := &cobra.Command{
		Use:     "compare",
		Short:   "Run every algorithm on a grid and tabulate the results",
		Example: `gridnav compare -f maze.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			summaries, err := pathfind.Compare(g)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"algorithm", "visited", "path length", "found"})
			for _, s := range summaries {
				length := "-"
				if s.Found {
					length = strconv.Itoa(s.Length)
				}
				table.Append([]string{s.Algorithm.String(), strconv.Itoa(s.Visited), length, strconv.FormatBool(s.Found)})
			}
			table.Render()

			return nil
		},
	}
	grid.addFlags(compareCmd)

	return compareCmd
}
