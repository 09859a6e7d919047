// @title Vet Clinic API
// @version 1.0
// @description API REST de gestión de clínica veterinaria.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/platform/config"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Todavía no hay logger configurado.
		logger.New(logger.Options{Level: logger.ParseLevel("error")}).Fatal().Err(err).Msg("config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "vet-clinic-api",
	})

	var db *sql.DB
	if cfg.UsesPostgres() {
		if cfg.Database.AutoMigrate {
			if err := pg.Migrate(context.Background(), cfg.Database.DSN, log); err != nil {
				log.Fatal().Err(err).Msg("migrate")
			}
		}

		db, err = pg.Open(cfg.Database.DSN, pg.Options{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			TraceSQL:     cfg.Database.TraceSQL,
			Logger:       log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer db.Close()
		log.Info().Msg("using postgres store")
	} else {
		log.Warn().Msg("no database dsn, using in-memory store")
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:     db,
			Logger: log,
			SPADir: cfg.SPA.Dir,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
