package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/config"
	"github.com/hospitalsys/records-api/internal/handler/web"
	"github.com/hospitalsys/records-api/internal/repository/postgres"
	documentService "github.com/hospitalsys/records-api/internal/service/document"
	patientService "github.com/hospitalsys/records-api/internal/service/patient"
)

// Fixed deployment parameters for the form front end. Unlike the API server
// this variant connects once and halts on failure.
const webPort = 8090

var webDatabase = config.DatabaseConfig{
	Host:     "localhost",
	Port:     5432,
	User:     "root",
	Password: "",
	Name:     "hospital_sys",
	SSLMode:  "disable",
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	db, err := postgres.NewDB(webDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	patientSvc := patientService.NewService(postgres.NewPatientRepository(db))
	documentSvc := documentService.NewService(postgres.NewDocumentRepository(db))

	engine := web.NewEngine(web.NewHandler(patientSvc, documentSvc))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", webPort),
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Int("port", webPort).Msg("starting web server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
