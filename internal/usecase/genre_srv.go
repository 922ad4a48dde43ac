package usecase

import (
	"context"
	"time"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"
	"media-catalog/internal/dto/request"
	"media-catalog/internal/dto/response"
	"media-catalog/pkg/apperr"
	"media-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreService interface {
	Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	genres repository.GenreRepository
	log    *zap.Logger
}

func NewGenreService(genres repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genres: genres,
		log:    log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.genres.Create(ctx, genre); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.Newf(apperr.KindConflict, "genre %s already exists", req.Slug)
		}
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("slug", req.Slug))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create genre", err)
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genres.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list genres", err)
	}

	total, err := s.genres.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count genres", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list genres", err)
	}

	data := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		data = append(data, response.GenreToResponse(genre))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	genre, err := s.genres.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find genre", zap.Error(err), zap.String("slug", slug))
		return apperr.Wrap(apperr.KindInternal, "failed to delete genre", err)
	}
	if genre == nil {
		return apperr.Newf(apperr.KindNotFound, "genre %s not found", slug)
	}

	if err := s.genres.DeleteBySlug(ctx, slug); err != nil {
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("slug", slug))
		return apperr.Wrap(apperr.KindInternal, "failed to delete genre", err)
	}

	s.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}
