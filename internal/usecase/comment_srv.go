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

type CommentService interface {
	Create(ctx context.Context, titleID, reviewID string, caller Caller, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	ListByReview(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Update(ctx context.Context, titleID, reviewID, commentID string, caller Caller, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, titleID, reviewID, commentID string, caller Caller) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID string, caller Caller, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Authored: entity.Authored{AuthorID: caller.ID},
		ReviewID: review.ID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", reviewID),
			zap.String("author_id", caller.ID.String()),
		)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create comment", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID),
	)

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, caller.ID))
	return &resp, nil
}

func (s *commentService) GetByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list comments", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		s.log.Error("Failed to count comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list comments", err)
	}

	data := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		data = append(data, response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID)))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID string, caller Caller, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !permission.Allowed(caller.Role, caller.IsSuperuser, permission.ActionEdit, comment.AuthorID == caller.ID) {
		return nil, apperr.New(apperr.KindForbidden, "you may not edit this comment")
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update comment", err)
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID string, caller Caller) error {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !permission.Allowed(caller.Role, caller.IsSuperuser, permission.ActionDelete, comment.AuthorID == caller.ID) {
		return apperr.New(apperr.KindForbidden, "you may not delete this comment")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return apperr.Wrap(apperr.KindInternal, "failed to delete comment", err)
	}

	return nil
}

// findReview resolves the title/review pair from the URL, checking the
// review actually belongs to the title.
func (s *commentService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	tid, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid title ID %s", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, tid)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find title", err)
	}
	if title == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "title %s not found", titleID)
	}

	rid, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid review ID %s", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find review", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, apperr.Newf(apperr.KindNotFound, "review %s not found", reviewID)
	}

	return review, nil
}

func (s *commentService) findComment(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid comment ID %s", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find comment", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, apperr.Newf(apperr.KindNotFound, "comment %s not found", commentID)
	}

	return comment, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
