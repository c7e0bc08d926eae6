// Package cmd implements the gridnav command line.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridnav/config"
	"github.com/katalvlaran/gridnav/logger"
)

const (
	colorModeAuto   = "auto"
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{colorModeAuto, colorModeNever, colorModeAlways}

var longRootCmdDescription = `gridnav searches 2-D obstacle grids with Dijkstra, breadth-first or
depth-first search, and shows the visited order and the reconstructed path
in the terminal, as an animated replay, or over HTTP.
`

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	colorMode   string
}

// app is the state shared by every subcommand of one root command.
type app struct {
	opts rootOpts
	cfg  *config.Config
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("gridnav-%s: %v", Version, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "gridnav",
		Short:         "Grid pathfinding with Dijkstra, BFS and DFS.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.cfgFile, "config", "", "config file (default is $HOME/.gridnav.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&a.opts.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().StringVar(&a.opts.colorMode, "color", colorModeAuto,
		fmt.Sprintf("set the color mode, the possible values can be %v", supportedColorModes))
	rootCmd.DisableAutoGenTag = true

	rootCmd.AddCommand(
		newRunCmd(a),
		newCompareCmd(),
		newPlayCmd(a),
		newGenerateCmd(a),
		newInspectCmd(),
		newServeCmd(a),
		NewVersionCmd(),
	)

	return rootCmd
}

// init reads the config file and environment, then sets up logging.
func (a *app) init() error {
	switch a.opts.colorMode {
	case colorModeAuto, colorModeNever, colorModeAlways:
	default:
		return errors.Errorf("unsupported color mode %q, want one of %v", a.opts.colorMode, supportedColorModes)
	}

	if a.opts.cfgFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			a.opts.cfgFile = filepath.Join(home, ".gridnav.yaml")
		}
	}
	cfg, err := config.Load(viper.New(), a.opts.cfgFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	a.cfg = cfg

	if err := logger.Init(logger.LogOptions{
		Verbose:      a.opts.debugModeOn || cfg.Log.Debug,
		DisableColor: !a.color(),
		HideLogTime:  a.opts.hideLogTime,
		OutputDir:    cfg.Log.Dir,
	}); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	return nil
}

// color resolves the colour mode against the configuration.
func (a *app) color() bool {
	switch a.opts.colorMode {
	case colorModeAlways:
		return true
	case colorModeNever:
		return false
	}

	return a.cfg == nil || a.cfg.Log.Color
}
