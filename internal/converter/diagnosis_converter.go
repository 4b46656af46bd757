package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity to its DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		RecordID:      diagnosis.RecordID,
		DiagnosisText: diagnosis.DiagnosisText,
		DiagnosedBy:   diagnosis.DiagnosedBy,
		DiagnosisDate: diagnosis.DiagnosisDate,
		CreatedAt:     diagnosis.CreatedAt,
	}
}

// DiagnosesToResponses converts a slice of Diagnosis entities
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, diagnosis := range diagnoses {
		resp := DiagnosisToResponse(&diagnosis)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
