package repository

import (
	"context"
	"errors"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientDocumentRepository struct{}

func NewPatientDocumentRepository() domainRepo.PatientDocumentRepository {
	return &patientDocumentRepository{}
}

func (r *patientDocumentRepository) Create(ctx context.Context, db *gorm.DB, document *entity.PatientDocument) error {
	return db.WithContext(ctx).Create(document).Error
}

func (r *patientDocumentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientDocument, error) {
	var document entity.PatientDocument
	err := db.WithContext(ctx).Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *patientDocumentRepository) FindByRecordID(ctx context.Context, db *gorm.DB, recordID uuid.UUID) ([]entity.PatientDocument, error) {
	var documents []entity.PatientDocument
	err := db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("uploaded_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *patientDocumentRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PatientDocument{}).Error
}
