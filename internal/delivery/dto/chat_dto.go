package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PatientChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// Response DTOs

type PatientChatResponse struct {
	AiResponse string `json:"ai_response"`
}

type ChatMessageResponse struct {
	ID            int64     `json:"id"`
	PatientUserID uuid.UUID `json:"patient_user_id"`
	SenderRole    string    `json:"sender_role"`
	SenderName    string    `json:"sender_name,omitempty"`
	Content       string    `json:"content"`
	SentAt        time.Time `json:"sent_at"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int                   `json:"total"`
}
