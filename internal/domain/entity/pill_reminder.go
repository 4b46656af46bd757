package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PillReminder is a patient-managed medication reminder. Times holds the
// clock times ("08:00", "20:00") the patient wants to be reminded at.
type PillReminder struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientUserID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	MedicationName string          `gorm:"type:varchar(255);not null" json:"medication_name"`
	DosageAmount   decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"dosage_amount"`
	DosageUnit     string          `gorm:"type:varchar(20);not null" json:"dosage_unit"`
	Frequency      string          `gorm:"type:varchar(100);not null" json:"frequency"`
	Times          StringList      `gorm:"type:jsonb" json:"times"`
	Notes          string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PillReminder) TableName() string {
	return "pill_reminders"
}
