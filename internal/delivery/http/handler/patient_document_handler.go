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

type PatientDocumentHandler struct {
	documentUsecase usecase.PatientDocumentUsecase
	validator       *validator.CustomValidator
}

func NewPatientDocumentHandler(documentUsecase usecase.PatientDocumentUsecase, validator *validator.CustomValidator) *PatientDocumentHandler {
	return &PatientDocumentHandler{
		documentUsecase: documentUsecase,
		validator:       validator,
	}
}

// ListByRecord handles listing documents attached to a patient record
// @Summary List documents for a record
// @Tags Documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/documents [get]
func (h *PatientDocumentHandler) ListByRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	documents, err := h.documentUsecase.ListByRecord(r.Context(), recordID)
	if err != nil {
		h.writeError(w, err, "Failed to list documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

// Create handles attaching document metadata to a patient record
// @Summary Attach a document to a record
// @Tags Documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.CreatePatientDocumentRequest true "Create Request"
// @Success 201 {object} response.Response
// @Router /patients/{id}/documents [post]
func (h *PatientDocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.CreatePatientDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.Create(r.Context(), recordID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create document")
		return
	}

	response.Success(w, http.StatusCreated, "Document created successfully", document)
}

// Delete handles removing a document from a patient record
// @Summary Delete a document
// @Tags Documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Param documentId path string true "Document ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/documents/{documentId} [delete]
func (h *PatientDocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}
	documentID, err := uuid.Parse(vars["documentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := h.documentUsecase.Delete(r.Context(), recordID, documentID); err != nil {
		h.writeError(w, err, "Failed to delete document")
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}

func (h *PatientDocumentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRecordNotFound:
		response.NotFound(w, "Patient record not found")
	case usecase.ErrRecordNotOwned:
		response.Forbidden(w, "Patient record does not belong to you")
	case usecase.ErrDocumentNotFound:
		response.NotFound(w, "Document not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
