package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient's appointment with their doctor.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientUserID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	RecordID      *uuid.UUID        `gorm:"type:uuid;index" json:"record_id,omitempty"`
	DoctorID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt   time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Reason        string            `gorm:"type:text" json:"reason,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes the appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
