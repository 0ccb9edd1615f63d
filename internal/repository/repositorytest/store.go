// Package repositorytest provides in-memory repository implementations for
// handler and service tests. The store honors the same contracts as the
// postgres repositories: NSS uniqueness, patient resolution on document
// insert, and the read orderings.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
)

type Store struct {
	mu             sync.Mutex
	patients       []model.Patient
	documents      []model.PatientDocument
	nextPatientID  int64
	nextDocumentID int64
}

func NewStore() *Store {
	return &Store{nextPatientID: 1, nextDocumentID: 1}
}

func (s *Store) PatientRepository() repository.PatientRepository {
	return &patientRepo{store: s}
}

func (s *Store) DocumentRepository() repository.DocumentRepository {
	return &documentRepo{store: s}
}

func (s *Store) PatientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patients)
}

func (s *Store) DocumentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.documents)
}

func (s *Store) findPatient(nss string) (model.Patient, bool) {
	for _, p := range s.patients {
		if p.NSS == nss {
			return p, true
		}
	}
	return model.Patient{}, false
}

type patientRepo struct {
	store *Store
}

func (r *patientRepo) FindByNSS(_ context.Context, nss string) (*model.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.findPatient(nss)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *patientRepo) List(_ context.Context) ([]*model.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*model.Patient, 0, len(r.store.patients))
	for i := range r.store.patients {
		p := r.store.patients[i]
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].LastName), strings.ToLower(out[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
	})
	return out, nil
}

func (r *patientRepo) Create(_ context.Context, patient *model.Patient) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.findPatient(patient.NSS); ok {
		return 0, repository.ErrDuplicateNSS
	}

	patient.ID = r.store.nextPatientID
	r.store.nextPatientID++
	r.store.patients = append(r.store.patients, *patient)
	return patient.ID, nil
}

type documentRepo struct {
	store *Store
}

func (r *documentRepo) Find(_ context.Context, nss, docType, date string) (*model.PatientDocumentDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, d := range r.store.documents {
		if d.NSS == nss && d.Type == docType && d.Date == date {
			return r.store.detail(d), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentRepo) ListByPatient(_ context.Context, nss string) ([]*model.PatientDocumentDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*model.PatientDocumentDetail, 0)
	for _, d := range r.store.documents {
		if d.NSS == nss {
			out = append(out, r.store.detail(d))
		}
	}
	// ISO dates sort lexicographically; newest first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

func (r *documentRepo) Create(_ context.Context, doc *model.PatientDocument) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.findPatient(doc.NSS)
	if !ok {
		return 0, repository.ErrPatientNotFound
	}

	doc.ID = r.store.nextDocumentID
	r.store.nextDocumentID++
	doc.PatientID = p.ID
	r.store.documents = append(r.store.documents, *doc)
	return doc.ID, nil
}

func (s *Store) detail(d model.PatientDocument) *model.PatientDocumentDetail {
	detail := &model.PatientDocumentDetail{PatientDocument: d}
	if p, ok := s.findPatient(d.NSS); ok {
		detail.LastName = p.LastName
		detail.FirstName = p.FirstName
	}
	return detail
}
