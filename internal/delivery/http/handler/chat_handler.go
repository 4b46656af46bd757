package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/delivery/http/middleware"
	"medimind-portal/internal/domain/entity"
	"medimind-portal/internal/service"
	"medimind-portal/internal/usecase"
	"medimind-portal/pkg/response"
	"medimind-portal/pkg/validator"
)

type ChatHandler struct {
	chatUsecase usecase.PatientChatUsecase
	authUsecase usecase.AuthUsecase
	limiter     *service.ChatLimitService
	validator   *validator.CustomValidator
}

func NewChatHandler(
	chatUsecase usecase.PatientChatUsecase,
	authUsecase usecase.AuthUsecase,
	limiter *service.ChatLimitService,
	validator *validator.CustomValidator,
) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		authUsecase: authUsecase,
		limiter:     limiter,
		validator:   validator,
	}
}

// Chat handles a patient message to the assistant
// @Summary Send a chat message to the assistant
// @Description Sends a message and returns the assistant's reply
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PatientChatRequest true "Chat Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PatientChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.limiter.Allow(r.Context(), userID); err != nil {
		response.TooManyRequests(w, "Daily message limit reached. Please try again tomorrow.")
		return
	}

	identity := h.identityFromContext(r)
	senderName := h.senderName(r)

	reply := h.chatUsecase.Converse(r.Context(), identity, senderName, req.Message)
	response.Success(w, http.StatusOK, "Message processed", reply)
}

// History returns the patient's chat transcript
// @Summary Get chat history
// @Tags Chat
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max messages to return"
// @Success 200 {object} response.Response
// @Router /chat/history [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.chatUsecase.History(r.Context(), userID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get chat history")
		return
	}

	response.Success(w, http.StatusOK, "Chat history retrieved successfully", history)
}

// identityFromContext builds the patient identity from the token's subject
// and identity scheme. Patient-number logins carry the record key directly;
// portal logins carry the account ID.
func (h *ChatHandler) identityFromContext(r *http.Request) entity.PatientIdentity {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	scheme, _ := middleware.GetSchemeFromContext(r.Context())

	if scheme == string(entity.SchemeRecordKey) {
		return entity.IdentityByRecordKey(userID)
	}
	return entity.IdentityByAuthProvider(userID)
}

func (h *ChatHandler) senderName(r *http.Request) string {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return "Patient"
	}
	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil || user == nil || user.FullName == "" {
		return "Patient"
	}
	return user.FullName
}
