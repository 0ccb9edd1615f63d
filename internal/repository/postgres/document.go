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

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

const documentDetailColumns = `
	pd.id, pd.patient_id, pd.numero_securite_sociale, pd.type_document,
	pd.description, pd.date_document::text AS date_document,
	p.nom, p.prenom
`

func (r *documentRepository) Find(ctx context.Context, nss, docType, date string) (*model.PatientDocumentDetail, error) {
	query := `
		SELECT ` + documentDetailColumns + `
		FROM patient_documents pd
		JOIN patients p ON pd.patient_id = p.id
		WHERE pd.numero_securite_sociale = $1
		AND pd.type_document = $2
		AND pd.date_document = $3
	`

	var doc model.PatientDocumentDetail
	err := r.db.GetContext(ctx, &doc, query, nss, docType, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("nss", nss).Str("type", docType).Str("date", date).
			Msg("failed to get document")
		return nil, repository.ErrNotFound
	}
	return &doc, nil
}

// ListByPatient returns the patient's documents newest first. An unknown
// patient degrades to an empty list, not an error.
func (r *documentRepository) ListByPatient(ctx context.Context, nss string) ([]*model.PatientDocumentDetail, error) {
	query := `
		SELECT ` + documentDetailColumns + `
		FROM patient_documents pd
		JOIN patients p ON pd.patient_id = p.id
		WHERE pd.numero_securite_sociale = $1
		ORDER BY pd.date_document DESC
	`

	docs := make([]*model.PatientDocumentDetail, 0)
	if err := r.db.SelectContext(ctx, &docs, query, nss); err != nil {
		log.Error().Err(err).Str("nss", nss).Msg("failed to list documents")
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Create resolves the owning patient from the NSS and inserts in a single
// transaction. No document row exists without a pre-existing patient; the
// foreign key is the backstop if the patient disappears mid-flight.
func (r *documentRepository) Create(ctx context.Context, doc *model.PatientDocument) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var patientID int64
	err = tx.GetContext(ctx, &patientID,
		`SELECT id FROM patients WHERE numero_securite_sociale = $1`, doc.NSS)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("nss", doc.NSS).Msg("document rejected, patient not found")
		return 0, repository.ErrPatientNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("nss", doc.NSS).Msg("failed to resolve patient")
		return 0, fmt.Errorf("failed to resolve patient: %w", err)
	}

	query := `
		INSERT INTO patient_documents
			(patient_id, numero_securite_sociale, type_document, description, date_document)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err = tx.GetContext(ctx, &id, query,
		patientID,
		doc.NSS,
		doc.Type,
		doc.Description,
		doc.Date,
	)
	if err != nil {
		if isPQError(err, codeForeignKeyViolation) {
			return 0, repository.ErrPatientNotFound
		}
		log.Error().Err(err).Str("nss", doc.NSS).Msg("failed to create document")
		return 0, fmt.Errorf("failed to create document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit document: %w", err)
	}

	doc.ID = id
	doc.PatientID = patientID
	return id, nil
}
