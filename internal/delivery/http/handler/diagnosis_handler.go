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

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

// ListByRecord handles listing diagnoses for a patient record
// @Summary List diagnoses for a record
// @Tags Diagnoses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/diagnoses [get]
func (h *DiagnosisHandler) ListByRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	diagnoses, err := h.diagnosisUsecase.ListByRecord(r.Context(), recordID)
	if err != nil {
		h.writeError(w, err, "Failed to list diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

// Create handles adding a diagnosis to a patient record
// @Summary Create a diagnosis
// @Tags Diagnoses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.CreateDiagnosisRequest true "Create Request"
// @Success 201 {object} response.Response
// @Router /patients/{id}/diagnoses [post]
func (h *DiagnosisHandler) Create(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.CreateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.Create(r.Context(), recordID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create diagnosis")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis created successfully", diagnosis)
}

// Update handles updating a diagnosis
// @Summary Update a diagnosis
// @Tags Diagnoses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param diagnosisId path string true "Diagnosis ID"
// @Param request body dto.UpdateDiagnosisRequest true "Update Request"
// @Success 200 {object} response.Response
// @Router /patients/{id}/diagnoses/{diagnosisId} [put]
func (h *DiagnosisHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}
	diagnosisID, err := uuid.Parse(vars["diagnosisId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	var req dto.UpdateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.Update(r.Context(), recordID, diagnosisID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis updated successfully", diagnosis)
}

// Delete handles removing a diagnosis
// @Summary Delete a diagnosis
// @Tags Diagnoses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Param diagnosisId path string true "Diagnosis ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/diagnoses/{diagnosisId} [delete]
func (h *DiagnosisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}
	diagnosisID, err := uuid.Parse(vars["diagnosisId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	if err := h.diagnosisUsecase.Delete(r.Context(), recordID, diagnosisID); err != nil {
		h.writeError(w, err, "Failed to delete diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis deleted successfully", nil)
}

func (h *DiagnosisHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRecordNotFound:
		response.NotFound(w, "Patient record not found")
	case usecase.ErrRecordNotOwned:
		response.Forbidden(w, "Patient record does not belong to you")
	case usecase.ErrDiagnosisNotFound:
		response.NotFound(w, "Diagnosis not found")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
