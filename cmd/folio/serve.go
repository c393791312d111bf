package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/folio-blog/folio"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long: `serve renders pages on request. When posts come from a content
directory, edits under it are picked up without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.config.Addr = addr
			}
			app, err := folio.New(c.config)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("serving", "addr", app.Config.Addr, "url", app.Config.URL+folio.AboutPath)
			return app.Start(ctx)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides addr)")
	return cmd
}
