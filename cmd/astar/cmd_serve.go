package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gridpath/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	cfg := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP stepping API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, root.logger).Run(ctx)
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
