package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsys/records-api/internal/model"
	"github.com/hospitalsys/records-api/internal/repository"
	"github.com/hospitalsys/records-api/internal/repository/repositorytest"
)

func newTestService() (*Service, *repositorytest.Store) {
	store := repositorytest.NewStore()
	return NewService(store.PatientRepository()), store
}

func TestRegisterThenGetPatient(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id, err := svc.RegisterPatient(ctx, &model.Patient{
		NSS:       "123456789012345",
		LastName:  "Martin",
		FirstName: "Jean",
		BirthDate: "1980-01-01",
		Address:   "12 rue de la Paix",
		Phone:     "0601020304",
		Email:     "jean.martin@example.com",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := svc.GetPatient(ctx, "123456789012345")
	require.NoError(t, err)
	assert.Equal(t, "Martin", got.LastName)
	assert.Equal(t, "Jean", got.FirstName)
	assert.Equal(t, "1980-01-01", got.BirthDate)
	assert.Equal(t, "12 rue de la Paix", got.Address)
	assert.Equal(t, "0601020304", got.Phone)
	assert.Equal(t, "jean.martin@example.com", got.Email)
}

func TestRegisterPatientDuplicateNSS(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	first := &model.Patient{NSS: "298057512345678", LastName: "Durand", FirstName: "Claire", BirthDate: "1998-05-07"}
	_, err := svc.RegisterPatient(ctx, first)
	require.NoError(t, err)

	second := &model.Patient{NSS: "298057512345678", LastName: "Durand", FirstName: "Paul", BirthDate: "1990-03-02"}
	_, err = svc.RegisterPatient(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateNSS)
	assert.Equal(t, 1, store.PatientCount())
}

func TestGetPatientNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetPatient(context.Background(), "000000000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListPatientsOrderedByName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, p := range []*model.Patient{
		{NSS: "1", LastName: "Moreau", FirstName: "Luc", BirthDate: "1970-01-01"},
		{NSS: "2", LastName: "Bernard", FirstName: "Zoe", BirthDate: "1980-01-01"},
		{NSS: "3", LastName: "Bernard", FirstName: "Alice", BirthDate: "1985-01-01"},
	} {
		_, err := svc.RegisterPatient(ctx, p)
		require.NoError(t, err)
	}

	patients, err := svc.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Alice", patients[0].FirstName)
	assert.Equal(t, "Zoe", patients[1].FirstName)
	assert.Equal(t, "Moreau", patients[2].LastName)
}
