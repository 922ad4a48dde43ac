package usecase

import (
	"context"
	"time"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"
	"media-catalog/internal/dto/request"
	"media-catalog/internal/dto/response"
	"media-catalog/internal/permission"
	"media-catalog/pkg/apperr"
	"media-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	Create(ctx context.Context, titleID string, caller Caller, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	ListByTitle(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	Update(ctx context.Context, titleID, reviewID string, caller Caller, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID string, caller Caller) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, titleID string, caller Caller, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Authored: entity.Authored{AuthorID: caller.ID},
		TitleID:  title.ID,
		Text:     req.Text,
		Score:    req.Score,
	}

	// The unique (title, author) constraint is the authority; checking
	// first would still race with a concurrent insert.
	if err := s.repo.Review.Create(ctx, review); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.New(apperr.KindConflict, "you have already reviewed this title")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("title_id", titleID),
			zap.String("author_id", caller.ID.String()),
		)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create review", err)
	}

	// The review row is already persisted; a recompute failure surfaces
	// rather than hiding a stale rating behind a success response.
	if err := s.RecomputeRating(ctx, title.ID); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID),
		zap.Int("score", review.Score),
	)

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, caller.ID))
	return &resp, nil
}

func (s *reviewService) GetByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list reviews", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list reviews", err)
	}

	data := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID)))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID string, caller Caller, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !permission.Allowed(caller.Role, caller.IsSuperuser, permission.ActionEdit, review.AuthorID == caller.ID) {
		return nil, apperr.New(apperr.KindForbidden, "you may not edit this review")
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	scoreChanged := req.Score != nil
	if scoreChanged {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update review", err)
	}

	// Recompute only when the score field was part of the patch.
	if scoreChanged {
		if err := s.RecomputeRating(ctx, review.TitleID); err != nil {
			return nil, err
		}
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID string, caller Caller) error {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !permission.Allowed(caller.Role, caller.IsSuperuser, permission.ActionDelete, review.AuthorID == caller.ID) {
		return apperr.New(apperr.KindForbidden, "you may not delete this review")
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return apperr.Wrap(apperr.KindInternal, "failed to delete review", err)
	}

	return s.RecomputeRating(ctx, review.TitleID)
}

func (s *reviewService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
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

// findReview loads a review and checks it belongs to the title in the URL.
func (s *reviewService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid review ID %s", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find review", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, apperr.Newf(apperr.KindNotFound, "review %s not found", reviewID)
	}

	return review, nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
