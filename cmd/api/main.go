package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/config"
	patientHandler "github.com/hospitalsys/records-api/internal/handler/patient"
	"github.com/hospitalsys/records-api/internal/repository/postgres"
	"github.com/hospitalsys/records-api/internal/router"
	documentService "github.com/hospitalsys/records-api/internal/service/document"
	patientService "github.com/hospitalsys/records-api/internal/service/patient"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDBWithRetry(cfg.Database, cfg.Database.MaxRetries, cfg.Database.RetryDelay)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	patientRepo := postgres.NewPatientRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)

	patientSvc := patientService.NewService(patientRepo)
	documentSvc := documentService.NewService(documentRepo)

	h := patientHandler.NewHandler(patientSvc, documentSvc)
	r := router.NewRouter(router.DefaultConfig(), h)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
