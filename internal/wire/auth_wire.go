package wire

import (
	"media-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/v1/auth/signup - Request an account and confirmation code (public)
	r.Post("/api/v1/auth/signup", authHandler.Signup)

	// POST /api/v1/auth/token - Exchange confirmation code for access token (public)
	r.Post("/api/v1/auth/token", authHandler.Token)
}
