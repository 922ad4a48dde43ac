package repository

import (
	"context"
	"fmt"

	"media-catalog/internal/data/entity"
	"media-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleGenreRepository interface {
	Add(ctx context.Context, titleGenre *entity.TitleGenre) error
	DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error
	ListGenresByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error)
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

func (r *titleGenreRepository) Add(ctx context.Context, titleGenre *entity.TitleGenre) error {
	query := `
		INSERT INTO title_genres (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		titleGenre.ID,
		titleGenre.TitleID,
		titleGenre.GenreID,
		titleGenre.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add genre %s to title %s: %w",
				titleGenre.GenreID.String(), titleGenre.TitleID.String(), ErrDuplicate)
		}
		r.log.Error("Failed to add title genre",
			zap.Error(err),
			zap.String("title_id", titleGenre.TitleID.String()),
			zap.String("genre_id", titleGenre.GenreID.String()),
		)
		return fmt.Errorf("add genre %s to title %s: %w",
			titleGenre.GenreID.String(), titleGenre.TitleID.String(), err)
	}

	return nil
}

func (r *titleGenreRepository) DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, titleID)
	if err != nil {
		r.log.Error("Failed to delete title genres",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("delete genres for title %s: %w", titleID.String(), err)
	}

	return nil
}

func (r *titleGenreRepository) ListGenresByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.slug, g.created_at
		FROM genres g
		JOIN title_genres tg ON tg.genre_id = g.id
		WHERE tg.title_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, titleID)
	if err != nil {
		r.log.Error("Failed to list genres for title",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return nil, fmt.Errorf("list genres for title %s: %w", titleID.String(), err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.Slug,
			&genre.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, nil
}
