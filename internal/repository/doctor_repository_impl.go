package repository

import (
	"context"
	"errors"

	"healthcare-management/internal/domain/entity"
	domainRepo "healthcare-management/internal/domain/repository"
	"healthcare-management/internal/infrastructure/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return translateError(database.Conn(ctx, r.db).Omit(clause.Associations).Create(doctor).Error)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllByUserID(ctx context.Context, userID uint) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := database.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, translateError(err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	err := database.Conn(ctx, r.db).
		Model(doctor).
		Select(columns).
		Omit(clause.Associations).
		Updates(doctor).Error
	return translateError(err)
}

func (r *doctorRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Doctor{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
