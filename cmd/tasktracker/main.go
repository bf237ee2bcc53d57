package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"taskTracker/internal"
	"taskTracker/internal/repository/db"
	"taskTracker/internal/repository/file"
	"taskTracker/internal/repository/inmemory"
	"taskTracker/internal/server"
	"taskTracker/internal/server/auth/password"
	auth "taskTracker/internal/server/auth/user_auth"
	"taskTracker/pkg/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "taskTracker"
	tokenAudience = "taskTrackerClient"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
		defer signal.Stop(c)
		<-c
		cancel()
	}()

	cfg := internal.ReadConfig()

	log := logger.Init(cfg.Debug, os.Stdout)
	log.Debug().Any("config", cfg.Redacted()).Send()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	ttl, _ := cfg.TokenDuration() //nolint:errcheck // уже проверено в Validate

	log.Info().Msg("Server starting...")

	// хранилище снапшота: Postgres, если задан DSN, иначе файл
	var (
		persister  inmemory.Persister
		postgresDB *db.Storage
	)
	if cfg.DNS != "" {
		var err error
		postgresDB, err = db.NewStorage(cfg.DNS)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres is unavailable")
		}
		if err = db.Migrations(cfg.DNS, cfg.MigratePath); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate db")
		}
		persister = postgresDB
	} else {
		filePersister, err := file.NewPersister(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid snapshot path")
		}
		log.Info().Str("path", filePersister.Path()).Msg("snapshot file storage")
		persister = filePersister
	}

	database, err := inmemory.NewStorage(persister)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load snapshot")
	}

	signer, err := auth.NewHS256Signer([]byte(cfg.JWTSecret), tokenIssuer, tokenAudience, ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure token signer")
	}

	srv := server.NewServer(cfg, database, password.NewCodec(bcrypt.DefaultCost), signer)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if errRun := srv.Run(); errRun != nil {
			if errors.Is(errRun, http.ErrServerClosed) {
				return
			}
			log.Fatal().Err(errRun).Msg("failed to start server")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), internal.SecTen)
		defer shutdownCancel()
		if errShut := srv.ShutDown(shutdownCtx); errShut != nil {
			log.Error().Err(errShut).Msg("failed to shutdown server")
		}
		if postgresDB != nil {
			if errClose := postgresDB.Close(shutdownCtx); errClose != nil {
				log.Error().Err(errClose).Msg("failed to shutdown database")
			}
		}
		log.Info().Msg("Server stopped")
	}()

	wg.Wait()
}
