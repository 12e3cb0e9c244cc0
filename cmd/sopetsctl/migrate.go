package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pg "sopets-web/internal/adapters/storage/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema (beta_registrations, users)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), pg.Schema())
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errNoDSN
			}
			db, err := a.openDB(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			a.log.Info("schema applied", nil)
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the schema instead of applying it")
	return cmd
}
