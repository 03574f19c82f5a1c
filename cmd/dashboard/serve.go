package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cxdash/config"
	"cxdash/web/handlers"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		dataCfg   config.Data
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the dashboard over HTTP",
		Flags: joinFlags(serverCfg.Flags(), dataCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting dashboard", "server", serverCfg, "data", dataCfg)

			provider, err := dataCfg.Provider()
			if err != nil {
				return err
			}

			dashboard, err := handlers.NewDashboard(provider)
			if err != nil {
				return goerr.Wrap(err, "couldn't create dashboard")
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := handlers.NewServer(ctx, serverCfg.Addr, dashboard)
			return server.Start(ctx)
		},
	}
}
