package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, tokens *token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/titles/{titleID}/reviews - Browse reviews of a title (public)
	r.Get("/api/v1/titles/{titleID}/reviews", reviewHandler.ListReviews)

	// GET /api/v1/titles/{titleID}/reviews/{reviewID} - Review detail (public)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.GetReview)

	// PUT is rejected; only PATCH updates exist.
	r.Put("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.MethodNotAllowed)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/v1/titles/{titleID}/reviews - One review per caller per title
		r.Post("/api/v1/titles/{titleID}/reviews", reviewHandler.CreateReview)

		// PATCH /api/v1/titles/{titleID}/reviews/{reviewID} - Owner or staff
		r.Patch("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.UpdateReview)

		// DELETE /api/v1/titles/{titleID}/reviews/{reviewID} - Owner or staff
		r.Delete("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.DeleteReview)
	})
}
