package entity

import (
	"time"

	"github.com/google/uuid"
)

// AiInstruction holds a doctor's customization of the chat assistant.
// There is at most one row per doctor (DoctorID is the primary key).
// InstructionText fully replaces the default assistant persona;
// PromptText is optional supplementary material (Q&A examples, scripts)
// appended after it.
type AiInstruction struct {
	DoctorID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	InstructionText string    `gorm:"type:text;not null" json:"instruction_text"`
	PromptText      string    `gorm:"type:text" json:"prompt_text,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AiInstruction) TableName() string {
	return "ai_instructions"
}
