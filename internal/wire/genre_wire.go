package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, tokens *token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/genres - Browse genres (public)
	r.Get("/api/v1/genres", genreHandler.ListGenres)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// POST /api/v1/genres - Create genre
		r.Post("/api/v1/genres", genreHandler.CreateGenre)

		// DELETE /api/v1/genres/{slug} - Remove genre
		r.Delete("/api/v1/genres/{slug}", genreHandler.DeleteGenre)
	})
}
