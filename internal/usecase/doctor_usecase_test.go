package usecase

import (
	"context"
	"testing"

	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/repository/repositorytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorUsecase(store *repositorytest.Store) DoctorUsecase {
	return NewDoctorUsecase(newTestLogger(), store.Transactor(), store.Doctors(), store.Mappings())
}

func smithRequest() *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Title:         "Dr.",
		Name:          "Smith",
		Email:         "smith@x.com",
		Phone:         "0987654321",
		Specialty:     "Cardiology",
		Qualification: "MD",
		Status:        "Active",
	}
}

func TestDoctorLifecycle(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	uc := newDoctorUsecase(store)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, owner, smithRequest())
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)

	updated, err := uc.UpdateDoctor(ctx, owner, created.ID, &dto.UpdateDoctorRequest{
		Status:            strPtr("On Leave"),
		YearsOfExperience: intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, "On Leave", updated.Status)
	assert.Equal(t, "Smith", updated.Name)
	require.NotNil(t, updated.YearsOfExperience)
	assert.Equal(t, 12, *updated.YearsOfExperience)

	list, err := uc.GetDoctors(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, uc.DeleteDoctor(ctx, owner, created.ID))
	_, err = uc.GetDoctor(ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorsArePerOwner(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	other := seedUser(t, store, "b@x.com")
	uc := newDoctorUsecase(store)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, owner, smithRequest())
	require.NoError(t, err)

	list, err := uc.GetDoctors(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list.Doctors)

	_, err = uc.GetDoctor(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrDoctorForbidden)
	assert.ErrorIs(t, uc.DeleteDoctor(ctx, other, created.ID), ErrDoctorForbidden)
}

func TestDeleteDoctorCascadesMappings(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	uc := newDoctorUsecase(store)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, owner, smithRequest())
	require.NoError(t, err)
	patient := &entity.Patient{UserID: owner, FirstName: "Jane", Age: 30}
	require.NoError(t, store.Patients().Create(ctx, patient))
	require.NoError(t, store.Mappings().Create(ctx, &entity.PatientDoctorMapping{
		PatientID: patient.ID, DoctorID: created.ID, Status: entity.MappingStatusActive,
	}))

	require.NoError(t, uc.DeleteDoctor(ctx, owner, created.ID))
	assert.Equal(t, 0, store.MappingCount())
}
