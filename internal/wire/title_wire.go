package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTitle(r chi.Router, titleHandler *adaptor.TitleHandler, tokens *token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/titles - Browse titles (public)
	r.Get("/api/v1/titles", titleHandler.ListTitles)

	// GET /api/v1/titles/{titleID} - Title detail with derived rating (public)
	r.Get("/api/v1/titles/{titleID}", titleHandler.GetTitle)

	// PUT is rejected everywhere on titles; only PATCH updates exist.
	r.Put("/api/v1/titles/{titleID}", titleHandler.MethodNotAllowed)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// POST /api/v1/titles - Create title
		r.Post("/api/v1/titles", titleHandler.CreateTitle)

		// PATCH /api/v1/titles/{titleID} - Partial update
		r.Patch("/api/v1/titles/{titleID}", titleHandler.UpdateTitle)

		// DELETE /api/v1/titles/{titleID} - Remove title
		r.Delete("/api/v1/titles/{titleID}", titleHandler.DeleteTitle)
	})
}
