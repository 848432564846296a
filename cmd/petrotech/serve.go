// cmd/petrotech/serve.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/petrotech/petrotech/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listenFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a web page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			c, err := opts.loadCatalog(ctx)
			if err != nil {
				return err
			}

			srv, err := web.NewServer(c, opts.logger, web.Options{Defaults: initialState(opts.cfg)})
			if err != nil {
				return err
			}

			addr := opts.cfg.Web.Listen
			if listenFlag != "" {
				addr = listenFlag
			}
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&listenFlag, "listen", "", "listen address (default from config)")
	return cmd
}
