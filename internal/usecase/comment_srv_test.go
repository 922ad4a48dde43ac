package usecase

import (
	"context"
	"testing"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/dto/request"
	"media-catalog/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	reviews := NewReviewService(repo, zap.NewNop())
	comments := NewCommentService(repo, zap.NewNop())

	alice := seedUser(t, repo, "alice", entity.RoleUser)
	bob := seedUser(t, repo, "bob", entity.RoleUser)
	title := seedTitle(t, repo, "Dune")

	review, err := reviews.Create(ctx, title.ID.String(), callerFor(alice), &request.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	require.NoError(t, err)

	comment, err := comments.Create(ctx, title.ID.String(), review.ID, callerFor(bob), &request.CreateCommentRequest{
		Text: "agreed",
	})
	require.NoError(t, err)
	assert.Equal(t, "agreed", comment.Text)
	assert.Equal(t, review.ID, comment.ReviewID)

	listed, err := comments.ListByReview(ctx, title.ID.String(), review.ID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, listed.Data, 1)

	edited := "agreed, mostly"
	updated, err := comments.Update(ctx, title.ID.String(), review.ID, comment.ID, callerFor(bob), &request.UpdateCommentRequest{
		Text: &edited,
	})
	require.NoError(t, err)
	assert.Equal(t, edited, updated.Text)

	require.NoError(t, comments.Delete(ctx, title.ID.String(), review.ID, comment.ID, callerFor(bob)))

	_, err = comments.GetByID(ctx, title.ID.String(), review.ID, comment.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCommentPermissions(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	reviews := NewReviewService(repo, zap.NewNop())
	comments := NewCommentService(repo, zap.NewNop())

	alice := seedUser(t, repo, "alice", entity.RoleUser)
	mallory := seedUser(t, repo, "mallory", entity.RoleUser)
	admin := seedUser(t, repo, "boss", entity.RoleAdmin)
	title := seedTitle(t, repo, "Dune")

	review, err := reviews.Create(ctx, title.ID.String(), callerFor(alice), &request.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	require.NoError(t, err)

	comment, err := comments.Create(ctx, title.ID.String(), review.ID, callerFor(alice), &request.CreateCommentRequest{
		Text: "mine",
	})
	require.NoError(t, err)

	evil := "hijacked"
	_, err = comments.Update(ctx, title.ID.String(), review.ID, comment.ID, callerFor(mallory), &request.UpdateCommentRequest{
		Text: &evil,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, comments.Delete(ctx, title.ID.String(), review.ID, comment.ID, callerFor(admin)))
}

func TestCommentReviewMismatchNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	reviews := NewReviewService(repo, zap.NewNop())
	comments := NewCommentService(repo, zap.NewNop())

	alice := seedUser(t, repo, "alice", entity.RoleUser)
	bob := seedUser(t, repo, "bob", entity.RoleUser)
	dune := seedTitle(t, repo, "Dune")
	solaris := seedTitle(t, repo, "Solaris")

	duneReview, err := reviews.Create(ctx, dune.ID.String(), callerFor(alice), &request.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	require.NoError(t, err)

	comment, err := comments.Create(ctx, dune.ID.String(), duneReview.ID, callerFor(bob), &request.CreateCommentRequest{
		Text: "on dune",
	})
	require.NoError(t, err)

	// The review belongs to another title: the nested path must 404.
	_, err = comments.GetByID(ctx, solaris.ID.String(), duneReview.ID, comment.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Unknown review under the right title.
	_, err = comments.Create(ctx, dune.ID.String(), uuid.NewString(), callerFor(bob), &request.CreateCommentRequest{
		Text: "lost",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
