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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// CreateCategory handles POST /api/v1/categories (admin)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// ListCategories handles GET /api/v1/categories (public)
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// DeleteCategory handles DELETE /api/v1/categories/{slug} (admin)
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		h.handleServiceError(w, err, "delete category")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *CategoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
