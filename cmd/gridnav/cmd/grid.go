package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/gridfile"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/pathfind"
)

// gridOpts are the flags shared by commands that read a grid document.
type gridOpts struct {
	file   string
	matrix bool
}

func (o *gridOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "grid document to read, - for stdin")
	cmd.Flags().BoolVar(&o.matrix, "matrix", false, "read the document as a numeric matrix (0 empty, 1 wall, 2 start, 3 end)")
	_ = cmd.MarkFlagRequired("file")
}

// load reads and validates the grid named by o.
func (o *gridOpts) load(stdin io.Reader) (*gridgraph.Grid, error) {
	var (
		data []byte
		err  error
	)
	if o.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(o.file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read grid %s", o.file)
	}

	var g *gridgraph.Grid
	if o.matrix {
		g, err = gridfile.DecodeMatrix(data)
	} else {
		g, err = gridfile.Unmarshal(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse grid %s", o.file)
	}
	logrus.Debugf("loaded %dx%d grid from %s with %d walls", g.Rows(), g.Cols(), o.file, len(g.Walls()))

	return g, nil
}

// traceHook logs every visited cell when debug logging is on.
func traceHook(a pathfind.Algorithm) []pathfind.Option {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}

	return []pathfind.Option{pathfind.WithOnVisit(func(c gridgraph.Cell, step int) error {
		logrus.Debugf("%s: visit %v step %d", a, c, step)
		return nil
	})}
}
