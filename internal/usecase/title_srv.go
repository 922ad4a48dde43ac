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

type TitleService interface {
	Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error)
	GetByID(ctx context.Context, titleID string) (*response.TitleResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	Update(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}
	if category != nil {
		title.CategoryID = &category.ID
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create title", err)
	}

	if err := s.attachGenres(ctx, title.ID, genres); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name))

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}

func (s *titleService) GetByID(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, title)
}

func (s *titleService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list titles", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list titles", err)
	}

	total, err := s.repo.Title.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count titles", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list titles", err)
	}

	data := make([]response.TitleResponse, 0, len(titles))
	for _, title := range titles {
		resp, err := s.assemble(ctx, title)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *titleService) Update(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if err := validateYear(*req.Year); err != nil {
			return nil, err
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}
	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update title", err)
	}

	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.repo.TitleGenre.DeleteByTitleID(ctx, title.ID); err != nil {
			s.log.Error("Failed to clear title genres", zap.Error(err), zap.String("title_id", titleID))
			return nil, apperr.Wrap(apperr.KindInternal, "failed to update title", err)
		}
		if err := s.attachGenres(ctx, title.ID, genres); err != nil {
			return nil, err
		}
	}

	return s.assemble(ctx, title)
}

func (s *titleService) Delete(ctx context.Context, titleID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	// Reviews and their comments go with the title via FK cascade.
	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		s.log.Error("Failed to delete title", zap.Error(err), zap.String("title_id", titleID))
		return apperr.Wrap(apperr.KindInternal, "failed to delete title", err)
	}

	return nil
}

// validateYear refuses titles that are not released yet.
func validateYear(year int) error {
	if year > time.Now().Year() {
		return apperr.Validation("Validation failed", map[string]string{
			"Year": "Release year must not be in the future",
		})
	}
	return nil
}

func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid title ID %s", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find title", err)
	}
	if title == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "title %s not found", titleID)
	}

	return title, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug *string) (*entity.Category, error) {
	if slug == nil {
		return nil, nil
	}

	category, err := s.repo.Category.FindBySlug(ctx, *slug)
	if err != nil {
		s.log.Error("Failed to resolve category", zap.Error(err), zap.String("slug", *slug))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to resolve category", err)
	}
	if category == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "category %s not found", *slug)
	}

	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	genres := make([]*entity.Genre, 0, len(slugs))
	for _, slug := range slugs {
		genre, err := s.repo.Genre.FindBySlug(ctx, slug)
		if err != nil {
			s.log.Error("Failed to resolve genre", zap.Error(err), zap.String("slug", slug))
			return nil, apperr.Wrap(apperr.KindInternal, "failed to resolve genre", err)
		}
		if genre == nil {
			return nil, apperr.Newf(apperr.KindNotFound, "genre %s not found", slug)
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

func (s *titleService) attachGenres(ctx context.Context, titleID uuid.UUID, genres []*entity.Genre) error {
	for _, genre := range genres {
		titleGenre := &entity.TitleGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			TitleID: titleID,
			GenreID: genre.ID,
		}
		if err := s.repo.TitleGenre.Add(ctx, titleGenre); err != nil {
			if repository.IsDuplicate(err) {
				continue
			}
			s.log.Error("Failed to attach genre",
				zap.Error(err),
				zap.String("title_id", titleID.String()),
				zap.String("genre_id", genre.ID.String()),
			)
			return apperr.Wrap(apperr.KindInternal, "failed to attach genre", err)
		}
	}

	return nil
}

func (s *titleService) assemble(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	var category *entity.Category
	if title.CategoryID != nil {
		var err error
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			s.log.Error("Failed to load title category",
				zap.Error(err),
				zap.String("title_id", title.ID.String()),
			)
			return nil, apperr.Wrap(apperr.KindInternal, "failed to load title", err)
		}
	}

	genres, err := s.repo.TitleGenre.ListGenresByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to load title genres", zap.Error(err), zap.String("title_id", title.ID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load title", err)
	}

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}
