package main

import (
	"github.com/spf13/cobra"

	"sopets-web/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API with the environment configuration.

Without DB_DSN / MONGO_URI the stores are in-memory (dev mode).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return server.Run(cmd.Context(), cfg, a.log)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "override PORT")
	return cmd
}
