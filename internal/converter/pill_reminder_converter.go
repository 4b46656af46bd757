package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// PillReminderToResponse converts a PillReminder entity to its DTO
func PillReminderToResponse(reminder *entity.PillReminder) *dto.PillReminderResponse {
	if reminder == nil {
		return nil
	}

	return &dto.PillReminderResponse{
		ID:             reminder.ID,
		MedicationName: reminder.MedicationName,
		DosageAmount:   reminder.DosageAmount,
		DosageUnit:     reminder.DosageUnit,
		Frequency:      reminder.Frequency,
		Times:          reminder.Times,
		Notes:          reminder.Notes,
		CreatedAt:      reminder.CreatedAt,
		UpdatedAt:      reminder.UpdatedAt,
	}
}

// PillRemindersToResponses converts a slice of PillReminder entities
func PillRemindersToResponses(reminders []entity.PillReminder) []dto.PillReminderResponse {
	responses := make([]dto.PillReminderResponse, len(reminders))
	for i, reminder := range reminders {
		resp := PillReminderToResponse(&reminder)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
