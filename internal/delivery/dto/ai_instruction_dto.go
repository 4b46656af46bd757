package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertAiInstructionRequest struct {
	InstructionText string `json:"instruction_text" validate:"required,min=1"`
	PromptText      string `json:"prompt_text"`
}

// Response DTOs

type AiInstructionResponse struct {
	DoctorID        uuid.UUID `json:"doctor_id"`
	InstructionText string    `json:"instruction_text"`
	PromptText      string    `json:"prompt_text,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
