package usecase

import (
	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"
	"media-catalog/pkg/mailer"
	"media-catalog/pkg/token"
	"media-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller identifies the authenticated requester for permission checks.
type Caller struct {
	ID          uuid.UUID
	Role        entity.UserRole
	IsSuperuser bool
}

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	tokens *token.Manager,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, tokens, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
