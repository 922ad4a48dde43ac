package usecase

import (
	"context"
	"testing"
	"time"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"
	"media-catalog/internal/dto/request"
	"media-catalog/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedCategory(t *testing.T, repo *repository.Repository, name, slug string) *entity.Category {
	t.Helper()
	category := &entity.Category{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       name,
		Slug:       slug,
	}
	require.NoError(t, repo.Category.Create(context.Background(), category))
	return category
}

func seedGenre(t *testing.T, repo *repository.Repository, name, slug string) *entity.Genre {
	t.Helper()
	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       name,
		Slug:       slug,
	}
	require.NoError(t, repo.Genre.Create(context.Background(), genre))
	return genre
}

func TestTitleCreateWithCategoryAndGenres(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewTitleService(repo, zap.NewNop())

	seedCategory(t, repo, "Movies", "movies")
	seedGenre(t, repo, "Sci-Fi", "sci-fi")
	seedGenre(t, repo, "Drama", "drama")

	movies := "movies"
	title, err := svc.Create(ctx, &request.CreateTitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: &movies,
		Genres:   []string{"sci-fi", "drama"},
	})
	require.NoError(t, err)
	require.NotNil(t, title.Category)
	assert.Equal(t, "movies", title.Category.Slug)
	assert.Len(t, title.Genres, 2)
	assert.Nil(t, title.Rating)

	fetched, err := svc.GetByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", fetched.Name)
	assert.Len(t, fetched.Genres, 2)
}

func TestTitleFutureYearRejected(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewTitleService(repo, zap.NewNop())

	_, err := svc.Create(ctx, &request.CreateTitleRequest{
		Name: "From the Future",
		Year: time.Now().Year() + 1,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	title, err := svc.Create(ctx, &request.CreateTitleRequest{
		Name: "This Year",
		Year: time.Now().Year(),
	})
	require.NoError(t, err)

	future := time.Now().Year() + 1
	_, err = svc.Update(ctx, title.ID, &request.UpdateTitleRequest{Year: &future})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTitleUnknownCategoryOrGenreNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewTitleService(repo, zap.NewNop())

	ghost := "ghost"
	_, err := svc.Create(ctx, &request.CreateTitleRequest{
		Name:     "Orphan",
		Year:     2000,
		Category: &ghost,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Create(ctx, &request.CreateTitleRequest{
		Name:   "Orphan",
		Year:   2000,
		Genres: []string{"ghost"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestTitleUpdateReplacesGenres(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewTitleService(repo, zap.NewNop())

	seedGenre(t, repo, "Sci-Fi", "sci-fi")
	seedGenre(t, repo, "Drama", "drama")

	title, err := svc.Create(ctx, &request.CreateTitleRequest{
		Name:   "Dune",
		Year:   2021,
		Genres: []string{"sci-fi"},
	})
	require.NoError(t, err)
	require.Len(t, title.Genres, 1)

	updated, err := svc.Update(ctx, title.ID, &request.UpdateTitleRequest{
		Genres: []string{"drama"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "drama", updated.Genres[0].Slug)
}

func TestTitleDeleteThenGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewTitleService(repo, zap.NewNop())

	title, err := svc.Create(ctx, &request.CreateTitleRequest{Name: "Gone", Year: 1999})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, title.ID))

	_, err = svc.GetByID(ctx, title.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
