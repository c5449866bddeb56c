package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-management/internal/converter"
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type MappingUsecase interface {
	CreateMapping(ctx context.Context, callerID uint, req *dto.CreateMappingRequest) (*dto.MappingResponse, error)
	// GetAllMappings lists every mapping regardless of owner.
	GetAllMappings(ctx context.Context) (*dto.MappingListResponse, error)
	GetMappingsByPatient(ctx context.Context, callerID, patientID uint) (*dto.MappingListResponse, error)
	DeleteMapping(ctx context.Context, callerID, mappingID uint) error
}

type mappingUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	mappingRepo repository.MappingRepository
	now         func() time.Time
}

func NewMappingUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	mappingRepo repository.MappingRepository,
) MappingUsecase {
	return &mappingUsecase{
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		mappingRepo: mappingRepo,
		now:         time.Now,
	}
}

func (u *mappingUsecase) CreateMapping(ctx context.Context, callerID uint, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	if _, err := u.ownedPatient(ctx, callerID, req.PatientID); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storeError("Failed to create mapping", err)
	}
	if doctor == nil || !doctor.OwnedBy(callerID) {
		return nil, ErrMappingDoctorUnavailable
	}

	mapping := &entity.PatientDoctorMapping{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		Status:       req.Status,
		Notes:        req.Notes,
		AssignedDate: u.now().UTC(),
		LastVisit:    req.LastVisit,
	}

	// Duplicate pairs are rejected by the unique constraint, so two
	// concurrent requests for the same pair cannot both succeed.
	if err := u.mappingRepo.Create(ctx, mapping); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrMappingExists
		}
		u.log.Warnf("Failed to create mapping: %+v", err)
		return nil, storeError("Failed to create mapping", err)
	}

	return converter.MappingToResponse(mapping), nil
}

func (u *mappingUsecase) GetAllMappings(ctx context.Context) (*dto.MappingListResponse, error) {
	mappings, err := u.mappingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find mappings: %+v", err)
		return nil, storeError("Failed to get mappings", err)
	}

	return converter.MappingsToListResponse(mappings), nil
}

func (u *mappingUsecase) GetMappingsByPatient(ctx context.Context, callerID, patientID uint) (*dto.MappingListResponse, error) {
	if _, err := u.ownedPatient(ctx, callerID, patientID); err != nil {
		return nil, err
	}

	mappings, err := u.mappingRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find mappings for patient: %+v", err)
		return nil, storeError("Failed to get patient mappings", err)
	}

	return converter.MappingsToListResponse(mappings), nil
}

func (u *mappingUsecase) DeleteMapping(ctx context.Context, callerID, mappingID uint) error {
	mapping, err := u.mappingRepo.FindByID(ctx, mappingID)
	if err != nil {
		u.log.Warnf("Failed to find mapping: %+v", err)
		return storeError("Failed to delete mapping", err)
	}
	if mapping == nil {
		return ErrMappingNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, mapping.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return storeError("Failed to delete mapping", err)
	}
	if patient == nil || !patient.OwnedBy(callerID) {
		return ErrMappingForbidden
	}

	deleted, err := u.mappingRepo.Delete(ctx, mappingID)
	if err != nil {
		u.log.Warnf("Failed to delete mapping: %+v", err)
		return storeError("Failed to delete mapping", err)
	}
	if deleted == 0 {
		return ErrMappingNotFound
	}

	return nil
}

// ownedPatient reports a missing and a foreign patient the same way.
func (u *mappingUsecase) ownedPatient(ctx context.Context, callerID, patientID uint) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storeError("Failed to get patient", err)
	}
	if patient == nil || !patient.OwnedBy(callerID) {
		return nil, ErrMappingPatientUnavailable
	}
	return patient, nil
}
