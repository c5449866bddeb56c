package repository

import (
	"context"

	"healthcare-management/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// FindByID returns nil, nil when the patient does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]entity.Patient, error)
	// Update writes only the named columns of patient.
	Update(ctx context.Context, patient *entity.Patient, columns []string) error
	Delete(ctx context.Context, id uint) (int64, error)
}
