package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientDocumentRepository interface {
	Create(ctx context.Context, db *gorm.DB, document *entity.PatientDocument) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientDocument, error)
	FindByRecordID(ctx context.Context, db *gorm.DB, recordID uuid.UUID) ([]entity.PatientDocument, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
