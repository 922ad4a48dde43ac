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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/v1/titles/{titleID}/reviews/{reviewID}/comments (protected)
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.Create(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), caller, &req)
	if err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "success", comment)
}

// ListComments handles GET .../reviews/{reviewID}/comments (public)
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByReview(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), paginationFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// GetComment handles GET .../comments/{commentID} (public)
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	comment, err := h.service.GetByID(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), chi.URLParam(r, "commentID"))
	if err != nil {
		h.handleServiceError(w, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// UpdateComment handles PATCH .../comments/{commentID} (protected)
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.Update(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), chi.URLParam(r, "commentID"), caller, &req)
	if err != nil {
		h.handleServiceError(w, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// DeleteComment handles DELETE .../comments/{commentID} (protected)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "titleID"), chi.URLParam(r, "reviewID"), chi.URLParam(r, "commentID"), caller); err != nil {
		h.handleServiceError(w, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}

// MethodNotAllowed rejects full replacement; comments change via PATCH only.
func (h *CommentHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "method not allowed, use PATCH for partial updates")
}

func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindInternal:
		h.log.Error("Failed to "+operation, zap.Error(err))
	default:
		h.log.Warn(operation+" rejected", zap.Error(err))
	}
	utils.ResponseError(w, err)
}
