package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
	"github.com/hospitalsys/records-api/internal/repository/repositorytest"
)

func newTestService(t *testing.T) (*Service, *repositorytest.Store) {
	t.Helper()
	store := repositorytest.NewStore()
	_, err := store.PatientRepository().Create(context.Background(), &model.Patient{
		NSS:       "123456789012345",
		LastName:  "Martin",
		FirstName: "Jean",
		BirthDate: "1980-01-01",
	})
	require.NoError(t, err)
	return NewService(store.DocumentRepository()), store
}

func TestAddDocumentDefaultsEmptyDescription(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddDocument(ctx, "123456789012345", "radiographie", "", "2025-05-14")
	require.NoError(t, err)

	doc, err := svc.GetDocument(ctx, "123456789012345", "radiographie", "2025-05-14")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDescription, doc.Description)
	assert.Equal(t, "Martin", doc.LastName)
	assert.Equal(t, "Jean", doc.FirstName)
}

func TestAddDocumentKeepsDescriptionVerbatim(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddDocument(ctx, "123456789012345", "analyse_sang", "Taux de glucose normal", "2025-02-03")
	require.NoError(t, err)

	doc, err := svc.GetDocument(ctx, "123456789012345", "analyse_sang", "2025-02-03")
	require.NoError(t, err)
	assert.Equal(t, "Taux de glucose normal", doc.Description)
}

func TestAddDocumentUnknownPatient(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.AddDocument(context.Background(), "999999999999999", "consultation", "suivi", "2025-01-01")
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
	assert.Equal(t, 0, store.DocumentCount())
}

func TestGetDocumentNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDocument(context.Background(), "123456789012345", "radiographie", "1999-01-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListDocumentsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, d := range []struct{ docType, date string }{
		{"consultation", "2024-11-02"},
		{"radiographie", "2025-05-14"},
		{"analyse_sang", "2025-01-20"},
	} {
		_, err := svc.AddDocument(ctx, "123456789012345", d.docType, "x", d.date)
		require.NoError(t, err)
	}

	docs, err := svc.ListDocuments(ctx, "123456789012345")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i := 1; i < len(docs); i++ {
		assert.GreaterOrEqual(t, docs[i-1].Date, docs[i].Date)
	}
	assert.Equal(t, "2025-05-14", docs[0].Date)
}

func TestListDocumentsUnknownPatientEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	docs, err := svc.ListDocuments(context.Background(), "999999999999999")
	require.NoError(t, err)
	assert.Empty(t, docs)
}
