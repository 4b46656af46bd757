package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientDocument is uploaded-file metadata attached to a patient record.
// The blob itself lives in external storage; DocumentPath points at it.
type PatientDocument struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordID     uuid.UUID `gorm:"type:uuid;not null;index" json:"record_id"`
	DocumentName string    `gorm:"type:varchar(255);not null" json:"document_name"`
	DocumentType string    `gorm:"type:varchar(100)" json:"document_type,omitempty"`
	DocumentPath string    `gorm:"type:text;not null" json:"document_path"`
	UploadedBy   uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relationships
	Record PatientRecord `gorm:"foreignKey:RecordID" json:"record,omitempty"`
}

func (PatientDocument) TableName() string {
	return "patient_documents"
}
