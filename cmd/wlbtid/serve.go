package main

import (
	"github.com/spf13/cobra"
	"github.com/wlbtid/calculator/internal/api"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	opts := api.Options{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections and stored inputs over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := g.logger(cmd.ErrOrStderr())
			st, err := g.openStore(logger)
			if err != nil {
				return err
			}
			h := api.NewHandler(g.engine(logger), st, logger.With("component", "api"))
			return api.Serve(cmd.Context(), h, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringSliceVar(&opts.AllowedOrigins, "origin", nil, "allowed CORS origins (default: any)")
	cmd.Flags().BoolVar(&opts.Release, "release", false, "run gin in release mode")
	return cmd
}
