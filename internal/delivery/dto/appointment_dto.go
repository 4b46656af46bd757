package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"`
	Reason      string    `json:"reason" validate:"max=2000"`
}

type UpdateAppointmentNotesRequest struct {
	Notes  string `json:"notes" validate:"max=4000"`
	Status string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	PatientUserID uuid.UUID  `json:"patient_user_id"`
	RecordID      *uuid.UUID `json:"record_id,omitempty"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	Reason        string     `json:"reason,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
