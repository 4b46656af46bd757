package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientDocumentRequest struct {
	DocumentName string `json:"document_name" validate:"required,min=1,max=255"`
	DocumentType string `json:"document_type" validate:"max=100"`
	DocumentPath string `json:"document_path" validate:"required"`
}

// Response DTOs

type PatientDocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	RecordID     uuid.UUID `json:"record_id"`
	DocumentName string    `json:"document_name"`
	DocumentType string    `json:"document_type,omitempty"`
	DocumentPath string    `json:"document_path"`
	UploadedBy   uuid.UUID `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type PatientDocumentListResponse struct {
	Documents []PatientDocumentResponse `json:"documents"`
	Total     int                       `json:"total"`
}
