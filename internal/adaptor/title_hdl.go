package adaptor

import (
	"encoding/json"
	"net/http"

	"media-catalog/internal/dto/request"
	"media-catalog/internal/usecase"
	"media-catalog/pkg/apperr"
	"media-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// CreateTitle handles POST /api/v1/titles (admin)
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create title")
		return
	}

	utils.ResponseCreated(w, "success", title)
}

// ListTitles handles GET /api/v1/titles (public)
func (h *TitleHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list titles")
		return
	}

	utils.ResponseSuccess(w, "success", titles)
}

// GetTitle handles GET /api/v1/titles/{titleID} (public)
func (h *TitleHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	title, err := h.service.GetByID(r.Context(), titleID)
	if err != nil {
		h.handleServiceError(w, err, "get title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// UpdateTitle handles PATCH /api/v1/titles/{titleID} (admin)
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	var req request.UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.Update(r.Context(), titleID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// DeleteTitle handles DELETE /api/v1/titles/{titleID} (admin)
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), titleID); err != nil {
		h.handleServiceError(w, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}

// MethodNotAllowed rejects full replacement; titles change via PATCH only.
func (h *TitleHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "method not allowed, use PATCH for partial updates")
}

func (h *TitleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
