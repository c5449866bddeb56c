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

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return translateError(database.Conn(ctx, r.db).Omit(clause.Associations).Create(patient).Error)
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByUserID(ctx context.Context, userID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := database.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, translateError(err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	err := database.Conn(ctx, r.db).
		Model(patient).
		Select(columns).
		Omit(clause.Associations).
		Updates(patient).Error
	return translateError(err)
}

func (r *patientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Patient{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
