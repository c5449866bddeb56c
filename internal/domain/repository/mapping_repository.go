package repository

import (
	"context"

	"healthcare-management/internal/domain/entity"
)

type MappingRepository interface {
	// Create returns ErrDuplicateKey when the (patient, doctor) pair exists.
	Create(ctx context.Context, mapping *entity.PatientDoctorMapping) error
	FindByID(ctx context.Context, id uint) (*entity.PatientDoctorMapping, error)
	FindAll(ctx context.Context) ([]entity.PatientDoctorMapping, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.PatientDoctorMapping, error)
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByPatientID(ctx context.Context, patientID uint) (int64, error)
	DeleteByDoctorID(ctx context.Context, doctorID uint) (int64, error)
}
