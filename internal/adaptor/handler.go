package adaptor

import (
	"net/http"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/dto/request"
	"media-catalog/internal/usecase"
	"media-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// callerFromRequest rebuilds the authenticated caller from the values the
// auth middleware stored on the request context.
func callerFromRequest(r *http.Request) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, false
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	return usecase.Caller{
		ID:          userID,
		Role:        entity.UserRole(role),
		IsSuperuser: utils.GetIsSuperuserFromContext(r.Context()),
	}, true
}

// paginationFromQuery reads page/per_page query parameters with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
