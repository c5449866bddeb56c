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

type mappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) domainRepo.MappingRepository {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) Create(ctx context.Context, mapping *entity.PatientDoctorMapping) error {
	return translateError(database.Conn(ctx, r.db).Omit(clause.Associations).Create(mapping).Error)
}

func (r *mappingRepository) FindByID(ctx context.Context, id uint) (*entity.PatientDoctorMapping, error) {
	var mapping entity.PatientDoctorMapping
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &mapping, nil
}

func (r *mappingRepository) FindAll(ctx context.Context) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	if err := database.Conn(ctx, r.db).Order("id ASC").Find(&mappings).Error; err != nil {
		return nil, translateError(err)
	}
	return mappings, nil
}

func (r *mappingRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := database.Conn(ctx, r.db).
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&mappings).Error
	if err != nil {
		return nil, translateError(err)
	}
	return mappings, nil
}

func (r *mappingRepository) Delete(ctx context.Context, id uint) (int64, error) {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *mappingRepository) DeleteByPatientID(ctx context.Context, patientID uint) (int64, error) {
	return r.deleteWhere(ctx, "patient_id = ?", patientID)
}

func (r *mappingRepository) DeleteByDoctorID(ctx context.Context, doctorID uint) (int64, error) {
	return r.deleteWhere(ctx, "doctor_id = ?", doctorID)
}

func (r *mappingRepository) deleteWhere(ctx context.Context, query string, arg uint) (int64, error) {
	result := database.Conn(ctx, r.db).Where(query, arg).Delete(&entity.PatientDoctorMapping{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
