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

type CategoryService interface {
	Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		log:        log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.Newf(apperr.KindConflict, "category %s already exists", req.Slug)
		}
		s.log.Error("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create category", err)
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categories.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list categories", err)
	}

	total, err := s.categories.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list categories", err)
	}

	data := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, response.CategoryToResponse(category))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("slug", slug))
		return apperr.Wrap(apperr.KindInternal, "failed to delete category", err)
	}
	if category == nil {
		return apperr.Newf(apperr.KindNotFound, "category %s not found", slug)
	}

	if err := s.categories.DeleteBySlug(ctx, slug); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("slug", slug))
		return apperr.Wrap(apperr.KindInternal, "failed to delete category", err)
	}

	s.log.Info("Category deleted", zap.String("slug", slug))
	return nil
}
