package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientRecord, error)
	// FindFirstByLinkedUserID returns the oldest record linked to the given
	// user account, or nil when none is linked. Ordering is by created_at then
	// id so the head of a duplicate-link set is stable across calls.
	FindFirstByLinkedUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientRecord, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientRecord, error)
	FindByPatientNumber(ctx context.Context, db *gorm.DB, patientNumber string) (*entity.PatientRecord, error)
	FindUnlinkedByEmail(ctx context.Context, db *gorm.DB, email string) ([]entity.PatientRecord, error)
	Update(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
