package repository

import (
	"context"

	"healthcare-management/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor, columns []string) error
	Delete(ctx context.Context, id uint) (int64, error)
}
