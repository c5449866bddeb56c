package usecase

import (
	"context"

	"healthcare-management/internal/converter"
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, callerID uint, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatients(ctx context.Context, callerID uint) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, callerID, patientID uint) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, callerID, patientID uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, callerID, patientID uint) error
}

type patientUsecase struct {
	log         *logrus.Logger
	transactor  repository.Transactor
	patientRepo repository.PatientRepository
	mappingRepo repository.MappingRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	patientRepo repository.PatientRepository,
	mappingRepo repository.MappingRepository,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		transactor:  transactor,
		patientRepo: patientRepo,
		mappingRepo: mappingRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, callerID uint, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := converter.CreatePatientRequestToEntity(req, callerID)

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, storeError("Failed to create patient", err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatients(ctx context.Context, callerID uint) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAllByUserID(ctx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, storeError("Failed to get patients", err)
	}

	return converter.PatientsToListResponse(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, callerID, patientID uint) (*dto.PatientResponse, error) {
	patient, err := u.findOwned(ctx, callerID, patientID)
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, callerID, patientID uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.findOwned(ctx, callerID, patientID)
	if err != nil {
		return nil, err
	}

	columns := converter.ApplyPatientUpdate(patient, req)
	if err := u.patientRepo.Update(ctx, patient, columns); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, storeError("Failed to update patient", err)
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes the patient's mappings and then the patient in one
// transaction.
func (u *patientUsecase) DeletePatient(ctx context.Context, callerID, patientID uint) error {
	if _, err := u.findOwned(ctx, callerID, patientID); err != nil {
		return err
	}

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := u.mappingRepo.DeleteByPatientID(ctx, patientID); err != nil {
			return err
		}
		deleted, err := u.patientRepo.Delete(ctx, patientID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrPatientNotFound
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return storeError("Failed to delete patient", err)
	}

	return nil
}

func (u *patientUsecase) findOwned(ctx context.Context, callerID, patientID uint) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storeError("Failed to get patient", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !patient.OwnedBy(callerID) {
		return nil, ErrPatientForbidden
	}
	return patient, nil
}
