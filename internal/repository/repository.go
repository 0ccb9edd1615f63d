package repository

import (
	"context"
	"errors"

	"github.com/hospitalsys/records-api/internal/model"
)

// Error kinds returned by repositories. Everything else coming out of the
// store is logged at the repository boundary and wrapped; raw driver errors
// never cross this interface.
var (
	// ErrNotFound signals an absent entity on a read path. It is not a
	// failure condition.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateNSS rejects a patient insert whose NSS already exists.
	ErrDuplicateNSS = errors.New("patient with this social security number already exists")

	// ErrPatientNotFound rejects a document insert whose NSS resolves to
	// no patient.
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientRepository interface {
	FindByNSS(ctx context.Context, nss string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Create(ctx context.Context, patient *model.Patient) (int64, error)
}

type DocumentRepository interface {
	Find(ctx context.Context, nss, docType, date string) (*model.PatientDocumentDetail, error)
	ListByPatient(ctx context.Context, nss string) ([]*model.PatientDocumentDetail, error)
	Create(ctx context.Context, doc *model.PatientDocument) (int64, error)
}
