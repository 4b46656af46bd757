package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medimind-portal/config"
	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeRecordRepo struct {
	byID      map[uuid.UUID]*entity.PatientRecord
	byLinked  map[uuid.UUID]*entity.PatientRecord
	idErr     error
	linkedErr error
}

func (f *fakeRecordRepo) Create(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error {
	return nil
}

func (f *fakeRecordRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientRecord, error) {
	if f.idErr != nil {
		return nil, f.idErr
	}
	return f.byID[id], nil
}

func (f *fakeRecordRepo) FindFirstByLinkedUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientRecord, error) {
	if f.linkedErr != nil {
		return nil, f.linkedErr
	}
	return f.byLinked[userID], nil
}

func (f *fakeRecordRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) FindByPatientNumber(ctx context.Context, db *gorm.DB, patientNumber string) (*entity.PatientRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) FindUnlinkedByEmail(ctx context.Context, db *gorm.DB, email string) ([]entity.PatientRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error {
	return nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return nil
}

type fakeInstructionRepo struct {
	byDoctor map[uuid.UUID]*entity.AiInstruction
	err      error
}

func (f *fakeInstructionRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.AiInstruction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDoctor[doctorID], nil
}

func (f *fakeInstructionRepo) Upsert(ctx context.Context, db *gorm.DB, instruction *entity.AiInstruction) error {
	return nil
}

func (f *fakeInstructionRepo) Delete(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error {
	return nil
}

type fakeChatRepo struct {
	created   []entity.ChatMessage
	createErr error
	messages  []entity.ChatMessage
}

func (f *fakeChatRepo) Create(ctx context.Context, db *gorm.DB, message *entity.ChatMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *message)
	return nil
}

func (f *fakeChatRepo) FindByPatientUserID(ctx context.Context, db *gorm.DB, patientUserID uuid.UUID, limit int) ([]entity.ChatMessage, error) {
	return f.messages, nil
}

type fakeLLM struct {
	reply      string
	err        error
	gotSystem  string
	gotUserMsg string
	calls      int
}

func (f *fakeLLM) Complete(ctx context.Context, systemInstructions, userMessage string) (string, error) {
	f.calls++
	f.gotSystem = systemInstructions
	f.gotUserMsg = userMessage
	return f.reply, f.err
}

func newChatFixture(records *fakeRecordRepo, instructions *fakeInstructionRepo, chats *fakeChatRepo, client *fakeLLM) PatientChatUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewPatientChatUsecase(nil, log, records, instructions, chats, client, config.AssistantConfig{})
}

func TestChatUsesDefaultPersonaWhenNoRecord(t *testing.T) {
	records := &fakeRecordRepo{}
	client := &fakeLLM{reply: "Hello!"}
	uc := newChatFixture(records, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	resp := uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")

	if resp.AiResponse != "Hello!" {
		t.Fatalf("expected LLM reply, got %q", resp.AiResponse)
	}
	if client.gotSystem != DefaultPersona {
		t.Errorf("expected the default persona as system instructions, got %q", client.gotSystem)
	}
	if client.gotUserMsg != "Hi" {
		t.Errorf("expected user message to pass through, got %q", client.gotUserMsg)
	}
}

func TestChatDoctorInstructionsReplaceDefaultPersona(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID},
		},
	}
	instructions := &fakeInstructionRepo{
		byDoctor: map[uuid.UUID]*entity.AiInstruction{
			doctorID: {DoctorID: doctorID, InstructionText: "Speak formally."},
		},
	}
	client := &fakeLLM{reply: "Certainly."}
	uc := newChatFixture(records, instructions, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	if client.gotSystem != "Speak formally." {
		t.Errorf("expected doctor instructions to replace the default persona, got %q", client.gotSystem)
	}
	if strings.Contains(client.gotSystem, DefaultPersona) {
		t.Error("default persona should not survive when the doctor customized instructions")
	}
}

func TestChatDoctorPromptTextAppendsAfterInstructions(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID},
		},
	}
	instructions := &fakeInstructionRepo{
		byDoctor: map[uuid.UUID]*entity.AiInstruction{
			doctorID: {DoctorID: doctorID, InstructionText: "Base.", PromptText: "Q: X A: Y"},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, instructions, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	want := "Base." + doctorPromptIntro + "Q: X A: Y"
	if client.gotSystem != want {
		t.Errorf("expected prompt text appended as a delimited section, got %q", client.gotSystem)
	}
}

func TestChatPatientPromptAppendsLast(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID, PatientPrompt: "Allergic to penicillin."},
		},
	}
	instructions := &fakeInstructionRepo{
		byDoctor: map[uuid.UUID]*entity.AiInstruction{
			doctorID: {DoctorID: doctorID, InstructionText: "Base."},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, instructions, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	if !strings.HasSuffix(client.gotSystem, patientPromptIntro+"Allergic to penicillin.") {
		t.Errorf("expected patient prompt as the final section, got %q", client.gotSystem)
	}
	if !strings.HasPrefix(client.gotSystem, "Base.") {
		t.Errorf("expected doctor instructions first, got %q", client.gotSystem)
	}
}

func TestChatPatientPromptAppliesWithoutDoctorInstructions(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID, PatientPrompt: "Prefers short answers."},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	want := DefaultPersona + patientPromptIntro + "Prefers short answers."
	if client.gotSystem != want {
		t.Errorf("expected default persona plus patient prompt, got %q", client.gotSystem)
	}
}

func TestChatAssemblesSameInstructionsForSameInputs(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID, PatientPrompt: "Allergic to penicillin."},
		},
	}
	instructions := &fakeInstructionRepo{
		byDoctor: map[uuid.UUID]*entity.AiInstruction{
			doctorID: {DoctorID: doctorID, InstructionText: "Base.", PromptText: "Q: X A: Y"},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, instructions, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")
	first := client.gotSystem
	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	if client.calls != 2 {
		t.Fatalf("expected 2 generation calls, got %d", client.calls)
	}
	if client.gotSystem != first {
		t.Errorf("expected identical system instructions for identical inputs, got %q then %q", first, client.gotSystem)
	}
}

func TestChatFallsBackToRecordKeyLookup(t *testing.T) {
	doctorID := uuid.New()
	recordID := uuid.New()
	records := &fakeRecordRepo{
		byID: map[uuid.UUID]*entity.PatientRecord{
			recordID: {ID: recordID, DoctorID: doctorID, PatientPrompt: "From record key."},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	// Provider-scheme identity whose ID only resolves via the direct lookup.
	uc.Chat(context.Background(), entity.IdentityByAuthProvider(recordID), "Hi")

	if !strings.Contains(client.gotSystem, "From record key.") {
		t.Errorf("expected direct record lookup to serve as fallback, got %q", client.gotSystem)
	}
}

func TestChatRecordKeySchemeSkipsLinkedLookup(t *testing.T) {
	doctorID := uuid.New()
	recordID := uuid.New()
	records := &fakeRecordRepo{
		byID: map[uuid.UUID]*entity.PatientRecord{
			recordID: {ID: recordID, DoctorID: doctorID, PatientPrompt: "Record-key login."},
		},
		// A linked match must not shadow the direct lookup for this scheme.
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			recordID: {ID: uuid.New(), DoctorID: uuid.New(), PatientPrompt: "Wrong record."},
		},
	}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByRecordKey(recordID), "Hi")

	if !strings.Contains(client.gotSystem, "Record-key login.") {
		t.Errorf("expected the direct lookup to win for record-key identities, got %q", client.gotSystem)
	}
}

func TestChatReturnsFallbackReplyOnGenerationError(t *testing.T) {
	client := &fakeLLM{err: errors.New("rate limited")}
	uc := newChatFixture(&fakeRecordRepo{}, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	resp := uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")

	if resp.AiResponse != FallbackReply {
		t.Errorf("expected fallback reply, got %q", resp.AiResponse)
	}
}

func TestChatReturnsFallbackReplyOnEmptyGeneration(t *testing.T) {
	client := &fakeLLM{reply: "   \n"}
	uc := newChatFixture(&fakeRecordRepo{}, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	resp := uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")

	if resp.AiResponse != FallbackReply {
		t.Errorf("expected fallback reply for blank output, got %q", resp.AiResponse)
	}
}

func TestChatSurvivesRecordLookupFailure(t *testing.T) {
	records := &fakeRecordRepo{
		linkedErr: errors.New("db down"),
		idErr:     errors.New("db down"),
	}
	client := &fakeLLM{reply: "Still here."}
	uc := newChatFixture(records, &fakeInstructionRepo{}, &fakeChatRepo{}, client)

	resp := uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")

	if resp.AiResponse != "Still here." {
		t.Fatalf("expected chat to degrade to the default persona, got %q", resp.AiResponse)
	}
	if client.gotSystem != DefaultPersona {
		t.Errorf("expected default persona after lookup failure, got %q", client.gotSystem)
	}
}

func TestChatSurvivesInstructionLookupFailure(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	records := &fakeRecordRepo{
		byLinked: map[uuid.UUID]*entity.PatientRecord{
			userID: {ID: uuid.New(), DoctorID: doctorID, PatientPrompt: "Patient note."},
		},
	}
	instructions := &fakeInstructionRepo{err: errors.New("db down")}
	client := &fakeLLM{reply: "ok"}
	uc := newChatFixture(records, instructions, &fakeChatRepo{}, client)

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(userID), "Hi")

	want := DefaultPersona + patientPromptIntro + "Patient note."
	if client.gotSystem != want {
		t.Errorf("expected default persona plus patient prompt after instruction failure, got %q", client.gotSystem)
	}
}

func TestConversePersistsBothTurns(t *testing.T) {
	chats := &fakeChatRepo{}
	client := &fakeLLM{reply: "Take care!"}
	uc := newChatFixture(&fakeRecordRepo{}, &fakeInstructionRepo{}, chats, client)

	userID := uuid.New()
	resp := uc.Converse(context.Background(), entity.IdentityByAuthProvider(userID), "Jane Doe", "Feeling fine")

	if resp.AiResponse != "Take care!" {
		t.Fatalf("unexpected reply %q", resp.AiResponse)
	}
	if len(chats.created) != 2 {
		t.Fatalf("expected 2 persisted turns, got %d", len(chats.created))
	}
	patientTurn, assistantTurn := chats.created[0], chats.created[1]
	if patientTurn.SenderRole != entity.SenderPatient || patientTurn.Content != "Feeling fine" || patientTurn.SenderName != "Jane Doe" {
		t.Errorf("unexpected patient turn %+v", patientTurn)
	}
	if assistantTurn.SenderRole != entity.SenderAssistant || assistantTurn.Content != "Take care!" || assistantTurn.SenderName != AssistantName {
		t.Errorf("unexpected assistant turn %+v", assistantTurn)
	}
	if patientTurn.PatientUserID != userID || assistantTurn.PatientUserID != userID {
		t.Error("turns should carry the patient's user ID")
	}
	if client.calls != 1 {
		t.Errorf("expected exactly one generation call, got %d", client.calls)
	}
}

func TestConverseStillRepliesWhenPersistenceFails(t *testing.T) {
	chats := &fakeChatRepo{createErr: errors.New("disk full")}
	client := &fakeLLM{reply: "Reply anyway."}
	uc := newChatFixture(&fakeRecordRepo{}, &fakeInstructionRepo{}, chats, client)

	resp := uc.Converse(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Jane", "Hi")

	if resp.AiResponse != "Reply anyway." {
		t.Errorf("expected reply despite transcript failure, got %q", resp.AiResponse)
	}
}

func TestChatConfiguredPersonaOverridesBuiltin(t *testing.T) {
	client := &fakeLLM{reply: "ok"}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	uc := NewPatientChatUsecase(nil, log, &fakeRecordRepo{}, &fakeInstructionRepo{}, &fakeChatRepo{}, client, config.AssistantConfig{
		DefaultPersona: "You are a custom assistant.",
		FallbackReply:  "Custom fallback.",
	})

	uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")
	if client.gotSystem != "You are a custom assistant." {
		t.Errorf("expected configured persona, got %q", client.gotSystem)
	}

	client.err = errors.New("boom")
	resp := uc.Chat(context.Background(), entity.IdentityByAuthProvider(uuid.New()), "Hi")
	if resp.AiResponse != "Custom fallback." {
		t.Errorf("expected configured fallback, got %q", resp.AiResponse)
	}
}
