package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// PatientRecordToResponse converts a PatientRecord entity to its DTO
func PatientRecordToResponse(record *entity.PatientRecord) *dto.PatientRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.PatientRecordResponse{
		ID:            record.ID,
		DoctorID:      record.DoctorID,
		FirstName:     record.FirstName,
		LastName:      record.LastName,
		PatientNumber: record.PatientNumber,
		Email:         record.Email,
		DateOfBirth:   record.DateOfBirth,
		Address:       record.Address,
		PhoneNumber:   record.PhoneNumber,
		PatientPrompt: record.PatientPrompt,
		Linked:        record.IsLinked(),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// PatientRecordsToResponses converts a slice of PatientRecord entities
func PatientRecordsToResponses(records []entity.PatientRecord) []dto.PatientRecordResponse {
	responses := make([]dto.PatientRecordResponse, len(records))
	for i, record := range records {
		resp := PatientRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
