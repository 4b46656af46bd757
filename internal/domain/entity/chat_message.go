package entity

import (
	"time"

	"github.com/google/uuid"
)

// SenderRole describes who authored a chat message.
type SenderRole string

const (
	SenderPatient   SenderRole = "patient"
	SenderAssistant SenderRole = "assistant"
)

// ChatMessage is one turn in a patient's conversation with the assistant.
// The log is append-only; SentAt is assigned by the database so ordering per
// patient is non-decreasing.
type ChatMessage struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientUserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	SenderRole    SenderRole `gorm:"type:varchar(20);not null" json:"sender_role"`
	SenderName    string     `gorm:"type:varchar(255)" json:"sender_name,omitempty"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	SentAt        time.Time  `gorm:"autoCreateTime;index" json:"sent_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
