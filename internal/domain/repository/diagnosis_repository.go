package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Diagnosis, error)
	FindByRecordID(ctx context.Context, db *gorm.DB, recordID uuid.UUID) ([]entity.Diagnosis, error)
	Update(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
