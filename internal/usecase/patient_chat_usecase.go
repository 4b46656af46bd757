package usecase

import (
	"context"
	"strings"

	"medimind-portal/config"
	"medimind-portal/internal/converter"
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
	"medimind-portal/internal/domain/repository"
	"medimind-portal/internal/infrastructure/llm"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PatientChatUsecase is the patient-facing chat assistant.
//
// Chat is the context-resolution pipeline: it works out which doctor owns the
// patient, layers the doctor's instructions and the patient-specific prompt
// over the default persona, and invokes generation. It never returns an
// error; every failure degrades to the next-safest default and, at worst, the
// fixed fallback reply. Converse wraps Chat with transcript persistence.
type PatientChatUsecase interface {
	Chat(ctx context.Context, identity entity.PatientIdentity, userMessage string) *dto.PatientChatResponse
	Converse(ctx context.Context, identity entity.PatientIdentity, senderName, userMessage string) *dto.PatientChatResponse
	History(ctx context.Context, patientUserID uuid.UUID, limit int) (*dto.ChatHistoryResponse, error)
}

type patientChatUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	recordRepo      repository.PatientRecordRepository
	instructionRepo repository.AiInstructionRepository
	chatRepo        repository.ChatMessageRepository
	llmClient       llm.Client
	defaultPersona  string
	fallbackReply   string
}

func NewPatientChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.PatientRecordRepository,
	instructionRepo repository.AiInstructionRepository,
	chatRepo repository.ChatMessageRepository,
	llmClient llm.Client,
	cfg config.AssistantConfig,
) PatientChatUsecase {
	persona := cfg.DefaultPersona
	if persona == "" {
		persona = DefaultPersona
	}
	fallback := cfg.FallbackReply
	if fallback == "" {
		fallback = FallbackReply
	}
	return &patientChatUsecase{
		db:              db,
		log:             log,
		recordRepo:      recordRepo,
		instructionRepo: instructionRepo,
		chatRepo:        chatRepo,
		llmClient:       llmClient,
		defaultPersona:  persona,
		fallbackReply:   fallback,
	}
}

// resolvePatientContext locates the patient's record and returns the owning
// doctor and the record's patient-specific prompt. Both "no record" and
// "lookup failed" yield an absent result; a failed lookup is only logged.
func (u *patientChatUsecase) resolvePatientContext(ctx context.Context, identity entity.PatientIdentity) (doctorID *uuid.UUID, patientPrompt string) {
	var record *entity.PatientRecord
	var err error

	switch identity.Scheme {
	case entity.SchemeRecordKey:
		record, err = u.recordRepo.FindByID(ctx, u.db, identity.ID)
		if err != nil {
			u.log.Warnf("Chat context: record lookup by key %s failed: %+v", identity.ID, err)
			record = nil
		}
	default:
		record, err = u.recordRepo.FindFirstByLinkedUserID(ctx, u.db, identity.ID)
		if err != nil {
			u.log.Warnf("Chat context: record lookup by linked user %s failed: %+v", identity.ID, err)
			record = nil
		}
		if record == nil {
			// Older patient accounts were issued tokens whose subject is the
			// record key itself; fall back to a direct lookup so those still
			// resolve.
			record, err = u.recordRepo.FindByID(ctx, u.db, identity.ID)
			if err != nil {
				u.log.Warnf("Chat context: record key fallback for %s failed: %+v", identity.ID, err)
				record = nil
			}
		}
	}

	if record == nil {
		return nil, ""
	}
	docID := record.DoctorID
	return &docID, record.PatientPrompt
}

// buildSystemInstructions assembles the layered system prompt. Precedence,
// lowest to highest: default persona, doctor's instruction text (replaces the
// default), doctor's supplementary prompt text (appends), patient-specific
// prompt (appends last).
func (u *patientChatUsecase) buildSystemInstructions(ctx context.Context, identity entity.PatientIdentity) string {
	instructions := u.defaultPersona

	doctorID, patientPrompt := u.resolvePatientContext(ctx, identity)

	if doctorID != nil {
		instruction, err := u.instructionRepo.FindByDoctorID(ctx, u.db, *doctorID)
		if err != nil {
			u.log.Warnf("Chat context: instruction lookup for doctor %s failed: %+v", doctorID, err)
			instruction = nil
		}
		if instruction != nil {
			instructions = instruction.InstructionText
			if instruction.PromptText != "" {
				instructions += doctorPromptIntro + instruction.PromptText
			}
		}
	}

	if patientPrompt != "" {
		instructions += patientPromptIntro + patientPrompt
	}

	return instructions
}

func (u *patientChatUsecase) Chat(ctx context.Context, identity entity.PatientIdentity, userMessage string) *dto.PatientChatResponse {
	instructions := u.buildSystemInstructions(ctx, identity)

	reply, err := u.llmClient.Complete(ctx, instructions, userMessage)
	if err != nil {
		u.log.Warnf("Chat generation failed for patient %s: %+v", identity.ID, err)
		return &dto.PatientChatResponse{AiResponse: u.fallbackReply}
	}
	if strings.TrimSpace(reply) == "" {
		u.log.Warnf("Chat generation returned empty output for patient %s", identity.ID)
		return &dto.PatientChatResponse{AiResponse: u.fallbackReply}
	}

	return &dto.PatientChatResponse{AiResponse: reply}
}

// Converse persists the patient's turn, generates the reply, and persists the
// assistant's turn. Transcript writes are best-effort: a storage failure is
// logged but must not take the chat surface down.
func (u *patientChatUsecase) Converse(ctx context.Context, identity entity.PatientIdentity, senderName, userMessage string) *dto.PatientChatResponse {
	patientTurn := &entity.ChatMessage{
		PatientUserID: identity.ID,
		SenderRole:    entity.SenderPatient,
		SenderName:    senderName,
		Content:       userMessage,
	}
	if err := u.chatRepo.Create(ctx, u.db, patientTurn); err != nil {
		u.log.Errorf("Failed to persist patient turn for %s: %+v", identity.ID, err)
	}

	resp := u.Chat(ctx, identity, userMessage)

	assistantTurn := &entity.ChatMessage{
		PatientUserID: identity.ID,
		SenderRole:    entity.SenderAssistant,
		SenderName:    AssistantName,
		Content:       resp.AiResponse,
	}
	if err := u.chatRepo.Create(ctx, u.db, assistantTurn); err != nil {
		u.log.Errorf("Failed to persist assistant turn for %s: %+v", identity.ID, err)
	}

	return resp
}

func (u *patientChatUsecase) History(ctx context.Context, patientUserID uuid.UUID, limit int) (*dto.ChatHistoryResponse, error) {
	messages, err := u.chatRepo.FindByPatientUserID(ctx, u.db, patientUserID, limit)
	if err != nil {
		u.log.Warnf("Failed to load chat history for %s: %+v", patientUserID, err)
		return nil, err
	}

	return &dto.ChatHistoryResponse{
		Messages: converter.ChatMessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}
