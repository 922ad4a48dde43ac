package repository

import (
	"errors"

	"media-catalog/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate marks a unique-constraint violation (duplicate review,
// username or email, genre/category slug). Services map it to a conflict.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User       UserRepository
	Category   CategoryRepository
	Genre      GenreRepository
	Title      TitleRepository
	TitleGenre TitleGenreRepository
	Review     ReviewRepository
	Comment    CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Category:   NewCategoryRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Title:      NewTitleRepository(db, log),
		TitleGenre: NewTitleGenreRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Comment:    NewCommentRepository(db, log),
	}
}

// IsDuplicate reports whether err wraps ErrDuplicate.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// isUniqueViolation checks for SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
