package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDiagnosisRequest struct {
	DiagnosisText string `json:"diagnosis_text" validate:"required,min=1"`
	DiagnosisDate string `json:"diagnosis_date" validate:"required"`
}

type UpdateDiagnosisRequest struct {
	DiagnosisText string `json:"diagnosis_text" validate:"required,min=1"`
	DiagnosisDate string `json:"diagnosis_date" validate:"required"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            uuid.UUID `json:"id"`
	RecordID      uuid.UUID `json:"record_id"`
	DiagnosisText string    `json:"diagnosis_text"`
	DiagnosedBy   uuid.UUID `json:"diagnosed_by"`
	DiagnosisDate time.Time `json:"diagnosis_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}
