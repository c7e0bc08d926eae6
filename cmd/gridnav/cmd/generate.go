package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/gridfile"
	"github.com/katalvlaran/gridnav/gridgen"
	"github.com/katalvlaran/gridnav/gridgraph"
)

var exampleForGenerateCmd = `
  gridnav generate --rows 50 --cols 100 --density 0.3 --seed 7 -o board.yaml
  gridnav generate --maze --rows 12 --cols 30 --seed 1
`

type generateOpts struct {
	rows, cols int
	density    float64
	seed       int64
	maze       bool
	output     string
}

func newGenerateCmd(a *app) *cobra.Command {
	var o generateOpts
	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a random grid document",
		Long:    "Write a random grid document. With --maze, rows and cols count maze rooms rather than cells.",
		Example: exampleForGenerateCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") {
				o.rows = a.cfg.Grid.Rows
			}
			if !cmd.Flags().Changed("cols") {
				o.cols = a.cfg.Grid.Cols
			}
			if !cmd.Flags().Changed("seed") {
				o.seed = time.Now().UnixNano()
			}
			logrus.Debugf("generating %dx%d grid with seed %d", o.rows, o.cols, o.seed)

			var (
				g   *gridgraph.Grid
				err error
			)
			if o.maze {
				g, err = gridgen.Maze(o.rows, o.cols, gridgen.WithSeed(o.seed))
			} else {
				g, err = gridgen.Random(o.rows, o.cols, o.density, gridgen.WithSeed(o.seed))
			}
			if err != nil {
				return errors.Wrap(err, "failed to generate grid")
			}

			if o.output == "" || o.output == "-" {
				return gridfile.Encode(cmd.OutOrStdout(), g)
			}
			if err := gridfile.Save(o.output, g); err != nil {
				return err
			}
			logrus.Infof("wrote %dx%d grid to %s", g.Rows(), g.Cols(), o.output)

			return nil
		},
	}
	generateCmd.Flags().IntVar(&o.rows, "rows", 50, "grid rows (default from grid.rows)")
	generateCmd.Flags().IntVar(&o.cols, "cols", 100, "grid columns (default from grid.cols)")
	generateCmd.Flags().Float64Var(&o.density, "density", 0.3, "probability that a cell is a wall")
	generateCmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed (default is time based)")
	generateCmd.Flags().BoolVar(&o.maze, "maze", false, "carve a perfect maze instead of scattering walls")
	generateCmd.Flags().StringVarP(&o.output, "output", "o", "", "file to write, stdout when empty")

	return generateCmd
}
