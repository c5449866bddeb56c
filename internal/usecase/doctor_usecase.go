package usecase

import (
	"context"

	"healthcare-management/internal/converter"
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, callerID uint, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctors(ctx context.Context, callerID uint) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, callerID, doctorID uint) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, callerID, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, callerID, doctorID uint) error
}

type doctorUsecase struct {
	log         *logrus.Logger
	transactor  repository.Transactor
	doctorRepo repository.DoctorRepository
	mappingRepo repository.MappingRepository
}

func NewDoctorUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	doctorRepo repository.DoctorRepository,
	mappingRepo repository.MappingRepository,
) DoctorUsecase {
	return &doctorUsecase{
		log:         log,
		transactor:  transactor,
		doctorRepo: doctorRepo,
		mappingRepo: mappingRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, callerID uint, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := converter.CreateDoctorRequestToEntity(req, callerID)

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, storeError("Failed to create doctor", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctors(ctx context.Context, callerID uint) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllByUserID(ctx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, storeError("Failed to get doctors", err)
	}

	return converter.DoctorsToListResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, callerID, doctorID uint) (*dto.DoctorResponse, error) {
	doctor, err := u.findOwned(ctx, callerID, doctorID)
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, callerID, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.findOwned(ctx, callerID, doctorID)
	if err != nil {
		return nil, err
	}

	columns := converter.ApplyDoctorUpdate(doctor, req)
	if err := u.doctorRepo.Update(ctx, doctor, columns); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, storeError("Failed to update doctor", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes the doctor's mappings and then the doctor in one
// transaction.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, callerID, doctorID uint) error {
	if _, err := u.findOwned(ctx, callerID, doctorID); err != nil {
		return err
	}

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := u.mappingRepo.DeleteByDoctorID(ctx, doctorID); err != nil {
			return err
		}
		deleted, err := u.doctorRepo.Delete(ctx, doctorID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrDoctorNotFound
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return storeError("Failed to delete doctor", err)
	}

	return nil
}

func (u *doctorUsecase) findOwned(ctx context.Context, callerID, doctorID uint) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storeError("Failed to get doctor", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.OwnedBy(callerID) {
		return nil, ErrDoctorForbidden
	}
	return doctor, nil
}
