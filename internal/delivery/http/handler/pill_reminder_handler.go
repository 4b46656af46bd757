package handler

import (
	"encoding/json"
	"net/http"

	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/usecase"
	"medimind-portal/pkg/response"
	"medimind-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PillReminderHandler struct {
	reminderUsecase usecase.PillReminderUsecase
	validator       *validator.CustomValidator
}

func NewPillReminderHandler(reminderUsecase usecase.PillReminderUsecase, validator *validator.CustomValidator) *PillReminderHandler {
	return &PillReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// GetMyReminders handles listing the patient's pill reminders
// @Summary List my pill reminders
// @Tags Pill Reminders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pill-reminders [get]
func (h *PillReminderHandler) GetMyReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetMyReminders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pill reminders")
		return
	}

	response.Success(w, http.StatusOK, "Pill reminders retrieved successfully", reminders)
}

// CreateReminder handles creating a pill reminder
// @Summary Create a pill reminder
// @Tags Pill Reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePillReminderRequest true "Create Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pill-reminders [post]
func (h *PillReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePillReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.CreateReminder(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create pill reminder")
		return
	}

	response.Success(w, http.StatusCreated, "Pill reminder created successfully", reminder)
}

// UpdateReminder handles updating a pill reminder
// @Summary Update a pill reminder
// @Tags Pill Reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param request body dto.UpdatePillReminderRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pill-reminders/{id} [put]
func (h *PillReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	reminderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	var req dto.UpdatePillReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.UpdateReminder(r.Context(), reminderID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update pill reminder")
		return
	}

	response.Success(w, http.StatusOK, "Pill reminder updated successfully", reminder)
}

// DeleteReminder handles deleting a pill reminder
// @Summary Delete a pill reminder
// @Tags Pill Reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pill-reminders/{id} [delete]
func (h *PillReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	reminderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	if err := h.reminderUsecase.DeleteReminder(r.Context(), reminderID); err != nil {
		h.writeError(w, err, "Failed to delete pill reminder")
		return
	}

	response.Success(w, http.StatusOK, "Pill reminder deleted successfully", nil)
}

func (h *PillReminderHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrReminderNotFound:
		response.NotFound(w, "Pill reminder not found")
	case usecase.ErrReminderNotOwned:
		response.Forbidden(w, "Pill reminder does not belong to you")
	default:
		response.InternalServerError(w, fallback)
	}
}
