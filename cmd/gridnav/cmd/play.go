package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/pathfind"
	"github.com/katalvlaran/gridnav/render"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		grid      gridOpts
		algorithm string
	)
	playCmd := &cobra.Command{
		Use:     "play",
		Short:   "Replay a search as a terminal animation",
		Example: `gridnav play -f maze.yaml -a dijkstra`,
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
			res, err := pathfind.Run(g, alg)
			if err != nil {
				return err
			}

			player := render.NewPlayer(alg.String(), g, res, a.cfg.Replay, render.New(a.color()))
			p := tea.NewProgram(player, tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "replay failed")
			}

			return nil
		},
	}
	grid.addFlags(playCmd)
	playCmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(pathfind.Dijkstra), fmt.Sprintf("search algorithm, one of %v", pathfind.Algorithms()))

	return playCmd
}
