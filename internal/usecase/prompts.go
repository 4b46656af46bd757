package usecase

// prompts.go holds the assistant's built-in texts. The persona and the
// fallback reply can be overridden through AssistantConfig; the section
// introductions are fixed so doctors always see their material framed the
// same way.

const (
	// AssistantName is the display name used for assistant-authored chat turns.
	AssistantName = "MediMind"

	// DefaultPersona is the system prompt used when the patient's doctor has
	// not customized the assistant. It is deliberately conservative: general
	// information only, no diagnoses, always defer to the doctor.
	DefaultPersona = "You are MediMind, a helpful AI assistant for patients. " +
		"Provide general health information and assist with non-urgent queries. " +
		"Do not provide medical diagnoses. Always encourage users to consult " +
		"their doctor for specific medical advice or serious issues."

	// doctorPromptIntro introduces the doctor's supplementary material so the
	// model treats it as guidelines and examples, not as the primary persona.
	doctorPromptIntro = "\n\nAdditionally, consider these specific guidelines or Q&A examples from the doctor:\n"

	// patientPromptIntro introduces the per-patient guidance. It is appended
	// last so it is the most salient context for the generation call.
	patientPromptIntro = "\n\nFor this specific patient, please also consider: "

	// FallbackReply is returned whenever generation fails or produces nothing
	// usable. Patients never see an error from the chat surface.
	FallbackReply = "I'm sorry, I couldn't generate a response at this moment. Please try again later."
)
