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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/v1/titles/{titleID}/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Create(r.Context(), chi.URLParam(r, "titleID"), caller, &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// ListReviews handles GET /api/v1/titles/{titleID}/reviews (public)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByTitle(r.Context(), chi.URLParam(r, "titleID"), paginationFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetReview handles GET /api/v1/titles/{titleID}/reviews/{reviewID} (public)
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.GetByID(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"))
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// UpdateReview handles PATCH /api/v1/titles/{titleID}/reviews/{reviewID} (protected)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Update(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), caller, &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/v1/titles/{titleID}/reviews/{reviewID} (protected)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), caller); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// MethodNotAllowed rejects full replacement; reviews change via PATCH only.
func (h *ReviewHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "method not allowed, use PATCH for partial updates")
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
