package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatMessageRepository struct{}

func NewChatMessageRepository() domainRepo.ChatMessageRepository {
	return &chatMessageRepository{}
}

func (r *chatMessageRepository) Create(ctx context.Context, db *gorm.DB, message *entity.ChatMessage) error {
	return db.WithContext(ctx).Create(message).Error
}

func (r *chatMessageRepository) FindByPatientUserID(ctx context.Context, db *gorm.DB, patientUserID uuid.UUID, limit int) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	query := db.WithContext(ctx).
		Where("patient_user_id = ?", patientUserID).
		Order("sent_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
