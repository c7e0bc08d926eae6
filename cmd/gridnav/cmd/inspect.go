package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var grid gridOpts
	inspectCmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Describe the open regions of a grid",
		Example: `gridnav inspect -f maze.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			regions := g.Regions()
			fmt.Fprintf(out, "grid %dx%d, %d walls, %d open regions, start and end connected: %t\n",
				g.Rows(), g.Cols(), len(g.Walls()), len(regions), g.Connected())

			sort.SliceStable(regions, func(i, j int) bool { return len(regions[i]) > len(regions[j]) })
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"region", "cells", "first cell", "holds"})
			for i, r := range regions {
				var holds []string
				for _, c := range r {
					switch c {
					case g.Start():
						holds = append(holds, "start")
					case g.End():
						holds = append(holds, "end")
					}
				}
				table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(len(r)), r[0].String(), strings.Join(holds, ",")})
			}
			table.Render()

			return nil
		},
	}
	grid.addFlags(inspectCmd)

	return inspectCmd
}
