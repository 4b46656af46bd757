package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, db *gorm.DB, message *entity.ChatMessage) error
	// FindByPatientUserID returns the patient's transcript ordered by sent_at
	// ascending (id breaks ties).
	FindByPatientUserID(ctx context.Context, db *gorm.DB, patientUserID uuid.UUID, limit int) ([]entity.ChatMessage, error)
}
