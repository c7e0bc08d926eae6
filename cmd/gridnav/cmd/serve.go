package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/cache"
	"github.com/katalvlaran/gridnav/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr     string
		maxCells int
	)
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the search API over HTTP",
		Example: `gridnav serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			c, err := cache.New(a.cfg.Cache.CacheOptions())
			if err != nil {
				return errors.Wrap(err, "failed to init cache")
			}
			logrus.Infof("result cache backend: %s", a.cfg.Cache.Backend)

			router := server.NewRouter(server.Config{
				Addr: addr,
				Mode: a.cfg.Server.Mode,
				Controllers: []server.Controller{
					server.NewSearchController(c, maxCells),
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return router.Run(ctx)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().IntVar(&maxCells, "max-cells", server.DefaultMaxCells, "largest rows*cols accepted per request")

	return serveCmd
}
