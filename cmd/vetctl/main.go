// vetctl: tareas de operación de la API (migraciones y datos de prueba).
package main

import (
	"os"

	"vet-clinic/internal/platform/config"
	"vet-clinic/internal/platform/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vetctl",
		Short:         "Herramientas de la API de la clínica",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    "vetctl",
				Out:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.AddCommand(newMigrateCmd(a), newSeedCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.New(logger.Options{Level: zerolog.ErrorLevel, App: "vetctl"}).Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
