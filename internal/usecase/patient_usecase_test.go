package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/domain/repository"
	"healthcare-management/internal/repository/repositorytest"
	"healthcare-management/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientUsecase(store *repositorytest.Store) PatientUsecase {
	return NewPatientUsecase(newTestLogger(), store.Transactor(), store.Patients(), store.Mappings())
}

func janeRequest() *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "1234567890",
		Age:       30,
		Gender:    "Female",
		Status:    entity.PatientStatusActive,
	}
}

func TestCreatePatientIsOwnedByCaller(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	other := seedUser(t, store, "b@x.com")
	uc := newPatientUsecase(store)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, owner, janeRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, owner, created.UserID)

	mine, err := uc.GetPatients(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, mine.Total)

	theirs, err := uc.GetPatients(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 0, theirs.Total)
	assert.NotNil(t, theirs.Patients)
}

func TestPatientAccessControl(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	other := seedUser(t, store, "b@x.com")
	uc := newPatientUsecase(store)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, owner, janeRequest())
	require.NoError(t, err)

	_, err = uc.GetPatient(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrPatientForbidden)

	_, err = uc.UpdatePatient(ctx, other, created.ID, &dto.UpdatePatientRequest{FirstName: strPtr("Mallory")})
	assert.ErrorIs(t, err, ErrPatientForbidden)

	assert.ErrorIs(t, uc.DeletePatient(ctx, other, created.ID), ErrPatientForbidden)

	got, err := uc.GetPatient(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)

	_, err = uc.GetPatient(ctx, owner, created.ID+100)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdatePatientPartial(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	uc := newPatientUsecase(store)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, owner, janeRequest())
	require.NoError(t, err)

	updated, err := uc.UpdatePatient(ctx, owner, created.ID, &dto.UpdatePatientRequest{
		Age:          intPtr(31),
		MedicalNotes: strPtr("allergic to penicillin"),
	})
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "Jane", updated.FirstName)
	require.NotNil(t, updated.MedicalNotes)

	got, err := uc.GetPatient(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 31, got.Age)
	assert.Equal(t, "Doe", got.LastName)
}

func TestDeletePatientCascadesMappings(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	uc := newPatientUsecase(store)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, owner, janeRequest())
	require.NoError(t, err)
	doctor := &entity.Doctor{UserID: owner, Name: "Smith", Status: "Active"}
	require.NoError(t, store.Doctors().Create(ctx, doctor))
	require.NoError(t, store.Mappings().Create(ctx, &entity.PatientDoctorMapping{
		PatientID: created.ID, DoctorID: doctor.ID, Status: entity.MappingStatusActive,
	}))

	require.NoError(t, uc.DeletePatient(ctx, owner, created.ID))
	assert.Equal(t, 0, store.MappingCount())

	_, err = uc.GetPatient(ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	assert.ErrorIs(t, uc.DeletePatient(ctx, owner, created.ID), ErrPatientNotFound)
}

func TestPatientStoreUnavailable(t *testing.T) {
	store := repositorytest.NewStore()
	uc := newPatientUsecase(store)
	store.Err = fmt.Errorf("%w: connection refused", repository.ErrUnavailable)

	_, err := uc.GetPatients(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
}

func TestPatientCheckViolationIsValidationError(t *testing.T) {
	store := repositorytest.NewStore()
	owner := seedUser(t, store, "a@x.com")
	uc := newPatientUsecase(store)
	store.Err = fmt.Errorf("%w: patients_age_check", repository.ErrCheckViolation)

	_, err := uc.CreatePatient(context.Background(), owner, janeRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, http.StatusBadRequest, apperror.HTTPStatus(apperror.KindOf(err)))
}
