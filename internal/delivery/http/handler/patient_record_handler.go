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

type PatientRecordHandler struct {
	recordUsecase usecase.PatientRecordUsecase
	validator     *validator.CustomValidator
}

func NewPatientRecordHandler(recordUsecase usecase.PatientRecordUsecase, validator *validator.CustomValidator) *PatientRecordHandler {
	return &PatientRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// ListMyPatients handles listing the doctor's patient records
// @Summary List my patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientRecordHandler) ListMyPatients(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.ListMyPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", records)
}

// CreateRecord handles creating a new patient record
// @Summary Create a patient record
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRecordRequest true "Create Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.CreateRecord(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNumberExists:
			response.Error(w, http.StatusConflict, "Patient number already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient record created successfully", record)
}

// GetRecord handles getting a single patient record
// @Summary Get a patient record
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.recordUsecase.GetRecord(r.Context(), recordID)
	if err != nil {
		h.writeRecordError(w, err, "Failed to get patient record")
		return
	}

	response.Success(w, http.StatusOK, "Patient record retrieved successfully", record)
}

// UpdateRecord handles updating a patient record
// @Summary Update a patient record
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdatePatientRecordRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdatePatientRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.UpdateRecord(r.Context(), recordID, &req)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.writeRecordError(w, err, "Failed to update patient record")
		return
	}

	response.Success(w, http.StatusOK, "Patient record updated successfully", record)
}

// DeleteRecord handles deleting a patient record
// @Summary Delete a patient record
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.DeleteRecord(r.Context(), recordID); err != nil {
		h.writeRecordError(w, err, "Failed to delete patient record")
		return
	}

	response.Success(w, http.StatusOK, "Patient record deleted successfully", nil)
}

func (h *PatientRecordHandler) writeRecordError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRecordNotFound:
		response.NotFound(w, "Patient record not found")
	case usecase.ErrRecordNotOwned:
		response.Forbidden(w, "Patient record does not belong to you")
	default:
		response.InternalServerError(w, fallback)
	}
}
