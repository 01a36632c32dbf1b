package cli

import (
	"os"
	"os/signal"
	"syscall"

	"blogapi/app/server"

	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting blog API", "addr", a.cfg.Addr(), "environment", a.cfg.Environment)
			return server.New(a.cfg, store, a.logger).Run(ctx)
		},
	}
}
