package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientRecord is the doctor-managed chart for one patient. A record is
// created before the patient ever signs in; LinkedUserID is filled in once the
// patient authenticates and is matched to the record (by email at
// registration, or explicitly by the doctor). PatientPrompt is free-text
// guidance the doctor wants the chat assistant to apply for this patient only.
type PatientRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	FirstName     string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100);not null" json:"last_name"`
	PatientNumber string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"patient_number"`
	// InitialPassword is the bcrypt hash of the temporary password the doctor
	// hands to the patient for patient-number logins. Cleared once the patient
	// links a full account.
	InitialPassword string     `gorm:"type:text" json:"-"`
	Email           string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	DateOfBirth     *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address         string     `gorm:"type:text" json:"address,omitempty"`
	PhoneNumber     string     `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	PatientPrompt   string     `gorm:"type:text" json:"patient_prompt,omitempty"`
	LinkedUserID    *uuid.UUID `gorm:"type:uuid;index" json:"linked_user_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Diagnoses []Diagnosis   `gorm:"foreignKey:RecordID" json:"diagnoses,omitempty"`
}

func (PatientRecord) TableName() string {
	return "patient_records"
}

// IsLinked reports whether a signed-up patient account has been attached to
// this record.
func (r *PatientRecord) IsLinked() bool {
	return r.LinkedUserID != nil
}
