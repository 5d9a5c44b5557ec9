package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerbaras/perusahaan/pkg/config"
	"github.com/kerbaras/perusahaan/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API over the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.cfg.Store.Driver == config.DriverRemote {
				return errors.New("serve needs a local store driver, not remote")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, server.Config{
				Addr:   env.cfg.Server.Addr,
				Repos:  env.repos,
				Logger: env.logger,
			})
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	bindFlags(env.v, cmd.Flags(), map[string]string{"server.addr": "addr"})
	return cmd
}
