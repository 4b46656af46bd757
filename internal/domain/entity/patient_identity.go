package entity

import "github.com/google/uuid"

// IdentityScheme distinguishes the two ways a patient can be signed in.
type IdentityScheme string

const (
	// SchemeAuthProvider means the patient holds a full account; the id is a
	// users.id and resolves to a record through patient_records.linked_user_id.
	SchemeAuthProvider IdentityScheme = "provider"
	// SchemeRecordKey means the patient signed in with the patient number and
	// initial password their doctor handed out; the id is the
	// patient_records.id itself.
	SchemeRecordKey IdentityScheme = "record"
)

// PatientIdentity is the canonical, already-normalized identity the chat
// pipeline receives. Callers decide the scheme at authentication time so the
// resolver never has to guess which kind of id it was given.
type PatientIdentity struct {
	Scheme IdentityScheme
	ID     uuid.UUID
}

func IdentityByAuthProvider(id uuid.UUID) PatientIdentity {
	return PatientIdentity{Scheme: SchemeAuthProvider, ID: id}
}

func IdentityByRecordKey(id uuid.UUID) PatientIdentity {
	return PatientIdentity{Scheme: SchemeRecordKey, ID: id}
}
