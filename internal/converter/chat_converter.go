package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

// ChatMessageToResponse converts a ChatMessage entity to its DTO
func ChatMessageToResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ChatMessageResponse{
		ID:            message.ID,
		PatientUserID: message.PatientUserID,
		SenderRole:    string(message.SenderRole),
		SenderName:    message.SenderName,
		Content:       message.Content,
		SentAt:        message.SentAt,
	}
}

// ChatMessagesToResponses converts a slice of ChatMessage entities
func ChatMessagesToResponses(messages []entity.ChatMessage) []dto.ChatMessageResponse {
	responses := make([]dto.ChatMessageResponse, len(messages))
	for i, message := range messages {
		resp := ChatMessageToResponse(&message)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
