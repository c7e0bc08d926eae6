package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/pathfind"
	"github.com/katalvlaran/gridnav/render"
)

var exampleForRunCmd = `
  gridnav run -f maze.yaml
  gridnav run -f maze.yaml -a bfs --color never
  gridnav run -f board.json --matrix -a dfs
`

func newRunCmd(a *app) *cobra.Command {
	var (
		grid      gridOpts
		algorithm string
	)
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Search a grid and print the visited cells and path",
		Example: exampleForRunCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := pathfind.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			g, err := grid.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := pathfind.Run(g, alg, traceHook(alg)...)
			if err != nil {
				return err
			}

			r := render.New(a.color())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.Result(g, res))
			fmt.Fprintln(out, r.Legend())
			if res.Found() {
				fmt.Fprintf(out, "%s: visited %d cells, path length %d\n", alg, len(res.Visited), res.Length())
			} else {
				fmt.Fprintf(out, "%s: visited %d cells, no path\n", alg, len(res.Visited))
			}

			return nil
		},
	}
	grid.addFlags(runCmd)
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(pathfind.Dijkstra), fmt.Sprintf("search algorithm, one of %v", pathfind.Algorithms()))

	return runCmd
}
