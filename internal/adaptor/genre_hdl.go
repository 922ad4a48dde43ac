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

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// CreateGenre handles POST /api/v1/genres (admin)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// ListGenres handles GET /api/v1/genres (public)
func (h *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// DeleteGenre handles DELETE /api/v1/genres/{slug} (admin)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		h.handleServiceError(w, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *GenreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
