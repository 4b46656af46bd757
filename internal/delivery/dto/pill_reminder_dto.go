package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePillReminderRequest struct {
	MedicationName string          `json:"medication_name" validate:"required,min=1,max=255"`
	DosageAmount   decimal.Decimal `json:"dosage_amount" validate:"required"`
	DosageUnit     string          `json:"dosage_unit" validate:"required,max=20"`
	Frequency      string          `json:"frequency" validate:"required,max=100"`
	Times          []string        `json:"times" validate:"required,min=1,dive,required"`
	Notes          string          `json:"notes" validate:"max=2000"`
}

type UpdatePillReminderRequest struct {
	MedicationName string          `json:"medication_name" validate:"required,min=1,max=255"`
	DosageAmount   decimal.Decimal `json:"dosage_amount" validate:"required"`
	DosageUnit     string          `json:"dosage_unit" validate:"required,max=20"`
	Frequency      string          `json:"frequency" validate:"required,max=100"`
	Times          []string        `json:"times" validate:"required,min=1,dive,required"`
	Notes          string          `json:"notes" validate:"max=2000"`
}

// Response DTOs

type PillReminderResponse struct {
	ID             uuid.UUID       `json:"id"`
	MedicationName string          `json:"medication_name"`
	DosageAmount   decimal.Decimal `json:"dosage_amount"`
	DosageUnit     string          `json:"dosage_unit"`
	Frequency      string          `json:"frequency"`
	Times          []string        `json:"times"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PillReminderListResponse struct {
	Reminders []PillReminderResponse `json:"reminders"`
	Total     int                    `json:"total"`
}
