package main

import (
	"strings"

	pg "vet-clinic/internal/adapters/storage/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones de Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(dsn) == "" {
				dsn = a.cfg.Database.DSN
			}
			if strings.TrimSpace(dsn) == "" {
				return errors.New("no dsn: set VETCLINIC_DATABASE__DSN or --dsn")
			}
			return pg.Migrate(cmd.Context(), dsn, a.log)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "DSN de Postgres (por defecto el de la config)")
	return cmd
}
