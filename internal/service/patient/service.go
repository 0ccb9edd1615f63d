package patient

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetPatient(ctx context.Context, nss string) (*model.Patient, error) {
	return s.repo.FindByNSS(ctx, nss)
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// RegisterPatient creates a patient and returns the new surrogate id. A
// duplicate NSS is reported as repository.ErrDuplicateNSS and creates no row.
func (s *Service) RegisterPatient(ctx context.Context, patient *model.Patient) (int64, error) {
	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateNSS) {
			log.Info().Str("nss", patient.NSS).Msg("patient registration rejected, NSS already exists")
		}
		return 0, err
	}

	log.Info().Int64("id", id).Msg("patient registered")
	return id, nil
}
