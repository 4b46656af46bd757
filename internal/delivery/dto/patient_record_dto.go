package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRecordRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	PatientNumber   string `json:"patient_number" validate:"required,min=2,max=50"`
	InitialPassword string `json:"initial_password" validate:"omitempty,min=6,max=72"`
	Email           string `json:"email" validate:"omitempty,email"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty"`
	Address         string `json:"address"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=20"`
	PatientPrompt   string `json:"patient_prompt"`
}

type UpdatePatientRecordRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string `json:"last_name" validate:"required,min=1,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number" validate:"omitempty,max=20"`
	PatientPrompt string `json:"patient_prompt"`
}

// Response DTOs

type PatientRecordResponse struct {
	ID            uuid.UUID  `json:"id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	PatientNumber string     `json:"patient_number"`
	Email         string     `json:"email,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Address       string     `json:"address,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	PatientPrompt string     `json:"patient_prompt,omitempty"`
	Linked        bool       `json:"linked"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PatientRecordListResponse struct {
	Records []PatientRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
