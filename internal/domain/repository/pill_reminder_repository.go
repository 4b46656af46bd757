package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PillReminderRepository interface {
	Create(ctx context.Context, db *gorm.DB, reminder *entity.PillReminder) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PillReminder, error)
	FindByPatientUserID(ctx context.Context, db *gorm.DB, patientUserID uuid.UUID) ([]entity.PillReminder, error)
	Update(ctx context.Context, db *gorm.DB, reminder *entity.PillReminder) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
