package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, tokens *token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/categories - Browse categories (public)
	r.Get("/api/v1/categories", categoryHandler.ListCategories)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// POST /api/v1/categories - Create category
		r.Post("/api/v1/categories", categoryHandler.CreateCategory)

		// DELETE /api/v1/categories/{slug} - Remove category
		r.Delete("/api/v1/categories/{slug}", categoryHandler.DeleteCategory)
	})
}
