package repository

import (
	"context"
	"errors"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.WithContext(ctx).Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.WithContext(ctx).Where("id = ?", id).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) FindByRecordID(ctx context.Context, db *gorm.DB, recordID uuid.UUID) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("diagnosis_date DESC, created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) Update(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.WithContext(ctx).Save(diagnosis).Error
}

func (r *diagnosisRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Diagnosis{}).Error
}
