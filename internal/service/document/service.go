package document

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
)

type Service struct {
	repo repository.DocumentRepository
}

func NewService(repo repository.DocumentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetDocument(ctx context.Context, nss, docType, date string) (*model.PatientDocumentDetail, error) {
	return s.repo.Find(ctx, nss, docType, date)
}

func (s *Service) ListDocuments(ctx context.Context, nss string) ([]*model.PatientDocumentDetail, error) {
	return s.repo.ListByPatient(ctx, nss)
}

// AddDocument attaches a document to the patient identified by nss. An empty
// description is replaced with model.DefaultDescription before the document
// reaches storage. A missing patient is reported as
// repository.ErrPatientNotFound and creates no row.
func (s *Service) AddDocument(ctx context.Context, nss, docType, description, date string) (int64, error) {
	if description == "" {
		description = model.DefaultDescription
	}

	doc := &model.PatientDocument{
		NSS:         nss,
		Type:        docType,
		Description: description,
		Date:        date,
	}

	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		return 0, err
	}

	log.Info().Int64("id", id).Str("type", docType).Msg("document added")
	return id, nil
}
