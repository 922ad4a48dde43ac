package wire

import (
	"net/http"

	"media-catalog/internal/adaptor"
	"media-catalog/internal/data/repository"
	"media-catalog/internal/usecase"
	"media-catalog/pkg/mailer"
	"media-catalog/pkg/middleware"
	"media-catalog/pkg/token"
	"media-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	tokens *token.Manager,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireCategory(r, handler.Category, tokens, logger)
	wireGenre(r, handler.Genre, tokens, logger)
	wireTitle(r, handler.Title, tokens, logger)
	wireReview(r, handler.Review, tokens, logger)
	wireComment(r, handler.Comment, tokens, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
