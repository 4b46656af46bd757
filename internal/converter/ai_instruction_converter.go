package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// AiInstructionToResponse converts an AiInstruction entity to its DTO
func AiInstructionToResponse(instruction *entity.AiInstruction) *dto.AiInstructionResponse {
	if instruction == nil {
		return nil
	}

	return &dto.AiInstructionResponse{
		DoctorID:        instruction.DoctorID,
		InstructionText: instruction.InstructionText,
		PromptText:      instruction.PromptText,
		CreatedAt:       instruction.CreatedAt,
		UpdatedAt:       instruction.UpdatedAt,
	}
}
