package adaptor

import (
	"encoding/json"
	"net/http"

	"media-catalog/internal/dto/request"
	"media-catalog/internal/usecase"
	"media-catalog/pkg/apperr"
	"media-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/v1/auth/signup (public)
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseSuccess(w, "confirmation code sent", resp)
}

// Token handles POST /api/v1/auth/token (public)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Token(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "token")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
