package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `
	id, numero_securite_sociale, nom, prenom,
	date_naissance::text AS date_naissance, adresse, telephone, email
`

func (r *patientRepository) FindByNSS(ctx context.Context, nss string) (*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE numero_securite_sociale = $1`

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, nss)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("nss", nss).Msg("failed to get patient")
		return nil, repository.ErrNotFound
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY nom, prenom`

	patients := make([]*model.Patient, 0)
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		log.Error().Err(err).Msg("failed to list patients")
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Create checks for an existing NSS and inserts in a single transaction.
// The unique constraint on numero_securite_sociale is the backstop for the
// race between two concurrent creations; its violation surfaces as the same
// ErrDuplicateNSS as the fast-path check.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.GetContext(ctx, &existing,
		`SELECT id FROM patients WHERE numero_securite_sociale = $1`, patient.NSS)
	if err == nil {
		return 0, repository.ErrDuplicateNSS
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("nss", patient.NSS).Msg("failed to check existing patient")
		return 0, fmt.Errorf("failed to check existing patient: %w", err)
	}

	query := `
		INSERT INTO patients
			(numero_securite_sociale, nom, prenom, date_naissance, adresse, telephone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err = tx.GetContext(ctx, &id, query,
		patient.NSS,
		patient.LastName,
		patient.FirstName,
		patient.BirthDate,
		patient.Address,
		patient.Phone,
		patient.Email,
	)
	if err != nil {
		if isPQError(err, codeUniqueViolation) {
			return 0, repository.ErrDuplicateNSS
		}
		log.Error().Err(err).Str("nss", patient.NSS).Msg("failed to create patient")
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit patient: %w", err)
	}

	patient.ID = id
	return id, nil
}
