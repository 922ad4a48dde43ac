package wire

import (
	"media-catalog/internal/adaptor"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, tokens *token.Manager, log *zap.Logger) {
	base := "/api/v1/titles/{titleID}/reviews/{reviewID}/comments"

	// ==================== PUBLIC ROUTES ====================
	// GET .../comments - Browse comments of a review (public)
	r.Get(base, commentHandler.ListComments)

	// GET .../comments/{commentID} - Comment detail (public)
	r.Get(base+"/{commentID}", commentHandler.GetComment)

	// PUT is rejected; only PATCH updates exist.
	r.Put(base+"/{commentID}", commentHandler.MethodNotAllowed)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST .../comments - Comment on a review
		r.Post(base, commentHandler.CreateComment)

		// PATCH .../comments/{commentID} - Owner or staff
		r.Patch(base+"/{commentID}", commentHandler.UpdateComment)

		// DELETE .../comments/{commentID} - Owner or staff
		r.Delete(base+"/{commentID}", commentHandler.DeleteComment)
	})
}
