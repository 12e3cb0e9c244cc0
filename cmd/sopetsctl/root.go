package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	pg "sopets-web/internal/adapters/storage/postgres"
	"sopets-web/internal/domain/registrations"
	"sopets-web/internal/platform/config"
	"sopets-web/internal/platform/logger"
)

var errNoDSN = errors.New("DB_DSN is required for this command")

// app agrupa dependencias de los comandos; los tests reemplazan los openers.
type app struct {
	log logger.Logger
	out io.Writer

	loadConfig        func() (config.API, error)
	openDB            func(dsn string) (*sql.DB, error)
	openRegistrations func(ctx context.Context, cfg config.API) (*registrations.Service, func() error, error)
}

func newApp() *app {
	a := &app{
		log:        logger.NewFromEnv(),
		out:        os.Stdout,
		loadConfig: config.LoadAPI,
		openDB:     pg.Open,
	}
	a.openRegistrations = a.registrationsFromDB
	return a
}

func (a *app) registrationsFromDB(_ context.Context, cfg config.API) (*registrations.Service, func() error, error) {
	if cfg.DBDSN == "" {
		return nil, nil, errNoDSN
	}
	db, err := a.openDB(cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	svc := registrations.NewService(pg.NewRegistrationsRepo(db), nil, registrations.Options{Logger: a.log})
	return svc, db.Close, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sopetsctl",
		Short: "Operator tooling for the SoPets web backend",
		Long: `sopetsctl runs and maintains the SoPets web backend.

Available subcommands:
  serve          - Run the HTTP API (same as cmd/api)
  migrate        - Apply the Postgres schema
  registrations  - Inspect and review beta registrations
  hatch          - Terminal preview of the egg hatch sequence`,
		SilenceUsage: true,
	}
	root.SetOut(a.out)

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newRegistrationsCmd(a),
		newHatchCmd(a),
	)
	return root
}
