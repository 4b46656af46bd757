package repository

import (
	"context"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AiInstructionRepository interface {
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.AiInstruction, error)
	Upsert(ctx context.Context, db *gorm.DB, instruction *entity.AiInstruction) error
	Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error
}
