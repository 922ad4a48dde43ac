package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *token.Manager, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/v1/users/me - Own profile
		r.Get("/api/v1/users/me", userHandler.GetProfile)

		// PATCH /api/v1/users/me - Update own profile (role stays fixed)
		r.Patch("/api/v1/users/me", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// GET /api/v1/users - List accounts
		r.Get("/api/v1/users", userHandler.ListUsers)

		// POST /api/v1/users - Create account directly
		r.Post("/api/v1/users", userHandler.CreateUser)

		// GET /api/v1/users/{username} - Account detail
		r.Get("/api/v1/users/{username}", userHandler.GetUser)

		// PATCH /api/v1/users/{username} - Update account
		r.Patch("/api/v1/users/{username}", userHandler.UpdateUser)

		// DELETE /api/v1/users/{username} - Remove account
		r.Delete("/api/v1/users/{username}", userHandler.DeleteUser)
	})
}
