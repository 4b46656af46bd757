package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis is a dated diagnosis entry on a patient record.
type Diagnosis struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordID      uuid.UUID `gorm:"type:uuid;not null;index" json:"record_id"`
	DiagnosisText string    `gorm:"type:text;not null" json:"diagnosis_text"`
	DiagnosedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"diagnosed_by"`
	DiagnosisDate time.Time `gorm:"type:date;not null" json:"diagnosis_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Record PatientRecord `gorm:"foreignKey:RecordID" json:"record,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
