package usecase

import (
	"context"
	"math"

	"media-catalog/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecomputeRating recalculates a title's aggregate rating from its
// reviews and persists it. The stored average is rounded half away
// from zero to the nearest integer. When a title has no reviews the
// previously stored value is left alone, so a rating survives the
// deletion of the last review that produced it.
func (s *reviewService) RecomputeRating(ctx context.Context, titleID uuid.UUID) error {
	avg, count, err := s.repo.Review.ScoreStatsByTitleID(ctx, titleID)
	if err != nil {
		s.log.Error("Failed to read score stats", zap.Error(err), zap.String("title_id", titleID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to recompute rating", err)
	}

	if count == 0 {
		return nil
	}

	rating := int(math.Round(avg))
	if err := s.repo.Title.UpdateRating(ctx, titleID, rating); err != nil {
		s.log.Error("Failed to store rating",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
			zap.Int("rating", rating),
		)
		return apperr.Wrap(apperr.KindInternal, "failed to recompute rating", err)
	}

	s.log.Debug("Rating recomputed",
		zap.String("title_id", titleID.String()),
		zap.Int("rating", rating),
		zap.Int64("reviews", count),
	)

	return nil
}
