package repository

import (
	"context"
	"errors"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pillReminderRepository struct{}

func NewPillReminderRepository() domainRepo.PillReminderRepository {
	return &pillReminderRepository{}
}

func (r *pillReminderRepository) Create(ctx context.Context, db *gorm.DB, reminder *entity.PillReminder) error {
	return db.WithContext(ctx).Create(reminder).Error
}

func (r *pillReminderRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PillReminder, error) {
	var reminder entity.PillReminder
	err := db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *pillReminderRepository) FindByPatientUserID(ctx context.Context, db *gorm.DB, patientUserID uuid.UUID) ([]entity.PillReminder, error) {
	var reminders []entity.PillReminder
	err := db.WithContext(ctx).
		Where("patient_user_id = ?", patientUserID).
		Order("created_at ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *pillReminderRepository) Update(ctx context.Context, db *gorm.DB, reminder *entity.PillReminder) error {
	return db.WithContext(ctx).Save(reminder).Error
}

func (r *pillReminderRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PillReminder{}).Error
}
