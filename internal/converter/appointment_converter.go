package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientUserID: appointment.PatientUserID,
		RecordID:      appointment.RecordID,
		DoctorID:      appointment.DoctorID,
		ScheduledAt:   appointment.ScheduledAt,
		Reason:        appointment.Reason,
		Notes:         appointment.Notes,
		Status:        string(appointment.Status),
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
