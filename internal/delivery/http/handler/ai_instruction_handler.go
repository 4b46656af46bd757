package handler

import (
	"encoding/json"
	"net/http"

	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/usecase"
	"medimind-portal/pkg/response"
	"medimind-portal/pkg/validator"
)

type AiInstructionHandler struct {
	instructionUsecase usecase.AiInstructionUsecase
	validator          *validator.CustomValidator
}

func NewAiInstructionHandler(instructionUsecase usecase.AiInstructionUsecase, validator *validator.CustomValidator) *AiInstructionHandler {
	return &AiInstructionHandler{
		instructionUsecase: instructionUsecase,
		validator:          validator,
	}
}

// GetMyInstruction handles getting the doctor's assistant customization
// @Summary Get my assistant instructions
// @Tags AI Customization
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /ai-customization [get]
func (h *AiInstructionHandler) GetMyInstruction(w http.ResponseWriter, r *http.Request) {
	instruction, err := h.instructionUsecase.GetMyInstruction(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get instructions")
		return
	}

	response.Success(w, http.StatusOK, "Instructions retrieved successfully", instruction)
}

// UpsertMyInstruction handles creating or replacing the doctor's customization
// @Summary Save my assistant instructions
// @Tags AI Customization
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertAiInstructionRequest true "Instructions"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /ai-customization [put]
func (h *AiInstructionHandler) UpsertMyInstruction(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertAiInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	instruction, err := h.instructionUsecase.UpsertMyInstruction(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save instructions")
		return
	}

	response.Success(w, http.StatusOK, "Instructions saved successfully", instruction)
}

// DeleteMyInstruction handles removing the doctor's customization
// @Summary Delete my assistant instructions
// @Tags AI Customization
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /ai-customization [delete]
func (h *AiInstructionHandler) DeleteMyInstruction(w http.ResponseWriter, r *http.Request) {
	if err := h.instructionUsecase.DeleteMyInstruction(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to delete instructions")
		return
	}

	response.Success(w, http.StatusOK, "Instructions deleted successfully", nil)
}
