package repository

import (
	"context"
	"errors"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aiInstructionRepository struct{}

func NewAiInstructionRepository() domainRepo.AiInstructionRepository {
	return &aiInstructionRepository{}
}

func (r *aiInstructionRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.AiInstruction, error) {
	var instruction entity.AiInstruction
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&instruction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &instruction, nil
}

func (r *aiInstructionRepository) Upsert(ctx context.Context, db *gorm.DB, instruction *entity.AiInstruction) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"instruction_text", "prompt_text", "updated_at"}),
	}).Create(instruction).Error
}

func (r *aiInstructionRepository) Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error {
	return db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&entity.AiInstruction{}).Error
}
