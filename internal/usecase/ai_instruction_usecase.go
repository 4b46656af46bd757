package usecase

import (
	"context"

	"medimind-portal/internal/converter"
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/delivery/http/middleware"
	"medimind-portal/internal/domain/entity"
	"medimind-portal/internal/domain/repository"
	"medimind-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AiInstructionUsecase lets a doctor customize the chat assistant their
// patients talk to. GetMyInstruction returns nil data when the doctor has
// never customized; the assistant then runs on the default persona.
type AiInstructionUsecase interface {
	GetMyInstruction(ctx context.Context) (*dto.AiInstructionResponse, error)
	UpsertMyInstruction(ctx context.Context, req *dto.UpsertAiInstructionRequest) (*dto.AiInstructionResponse, error)
	DeleteMyInstruction(ctx context.Context) error
}

type aiInstructionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	instructionRepo repository.AiInstructionRepository
	auditService    service.AuditService
}

func NewAiInstructionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	instructionRepo repository.AiInstructionRepository,
	auditService service.AuditService,
) AiInstructionUsecase {
	return &aiInstructionUsecase{
		db:              db,
		log:             log,
		instructionRepo: instructionRepo,
		auditService:    auditService,
	}
}

func (u *aiInstructionUsecase) GetMyInstruction(ctx context.Context) (*dto.AiInstructionResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	instruction, err := u.instructionRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find instruction for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.AiInstructionToResponse(instruction), nil
}

func (u *aiInstructionUsecase) UpsertMyInstruction(ctx context.Context, req *dto.UpsertAiInstructionRequest) (*dto.AiInstructionResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	old, err := u.instructionRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find instruction for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	instruction := &entity.AiInstruction{
		DoctorID:        doctorID,
		InstructionText: req.InstructionText,
		PromptText:      req.PromptText,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.instructionRepo.Upsert(ctx, tx, instruction); err != nil {
		u.log.Warnf("Failed to upsert instruction for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	var oldText interface{}
	if old != nil {
		oldText = old.InstructionText
	}
	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, "ai_instruction.upsert", "ai_instruction", doctorID.String(), oldText, instruction.InstructionText); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("AI instruction upserted for doctor %s", doctorID)
	return converter.AiInstructionToResponse(instruction), nil
}

func (u *aiInstructionUsecase) DeleteMyInstruction(ctx context.Context) error {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	old, err := u.instructionRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find instruction for doctor %s: %+v", doctorID, err)
		return err
	}
	if old == nil {
		// Nothing to delete; the assistant is already on defaults.
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.instructionRepo.Delete(ctx, tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete instruction for doctor %s: %+v", doctorID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &doctorID, "ai_instruction.delete", "ai_instruction", doctorID.String(), old.InstructionText); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
