package postgres

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/config"
)

// NewDB connects once and fails fast. Used by the form front end.
func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewDBWithRetry connects with a fixed-delay retry budget. Each failed
// attempt is logged and never surfaced to the caller; only exhaustion is.
func NewDBWithRetry(cfg config.DatabaseConfig, attempts int, delay time.Duration) (*sqlx.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := NewDB(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Msg("database connection attempt failed")

		if attempt < attempts {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempts, lastErr)
}

func dsn(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
}
