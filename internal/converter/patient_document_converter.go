package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// PatientDocumentToResponse converts a PatientDocument entity to its DTO
func PatientDocumentToResponse(document *entity.PatientDocument) *dto.PatientDocumentResponse {
	if document == nil {
		return nil
	}

	return &dto.PatientDocumentResponse{
		ID:           document.ID,
		RecordID:     document.RecordID,
		DocumentName: document.DocumentName,
		DocumentType: document.DocumentType,
		DocumentPath: document.DocumentPath,
		UploadedBy:   document.UploadedBy,
		UploadedAt:   document.UploadedAt,
	}
}

// PatientDocumentsToResponses converts a slice of PatientDocument entities
func PatientDocumentsToResponses(documents []entity.PatientDocument) []dto.PatientDocumentResponse {
	responses := make([]dto.PatientDocumentResponse, len(documents))
	for i, document := range documents {
		resp := PatientDocumentToResponse(&document)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
