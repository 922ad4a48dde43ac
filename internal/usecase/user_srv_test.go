package usecase

import (
	"context"
	"testing"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/dto/request"
	"media-catalog/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserAdminCreateDefaultsToUserRole(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	user, err := svc.Create(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	moderator := "moderator"
	promoted, err := svc.Create(ctx, &request.CreateUserRequest{
		Username: "mod",
		Email:    "mod@example.com",
		Role:     &moderator,
	})
	require.NoError(t, err)
	assert.Equal(t, "moderator", promoted.Role)
}

func TestUserCreateReservedUsernameRejected(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	_, err := svc.Create(ctx, &request.CreateUserRequest{
		Username: "Me",
		Email:    "me@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserCreateDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	_, err := svc.Create(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "second@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUserUpdateByUsername(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	seedUser(t, repo, "alice", entity.RoleUser)

	admin := "admin"
	bio := "catalog caretaker"
	updated, err := svc.Update(ctx, "alice", &request.UpdateUserRequest{
		Role: &admin,
		Bio:  &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)

	_, err = svc.Update(ctx, "nobody", &request.UpdateUserRequest{Role: &admin})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	alice := seedUser(t, repo, "alice", entity.RoleModerator)

	profile, err := svc.GetProfile(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "moderator", profile.Role)

	bio := "reviewer of reviews"
	updated, err := svc.UpdateProfile(ctx, alice.ID.String(), &request.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
	// Self-service never changes the role.
	assert.Equal(t, "moderator", updated.Role)
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	seedUser(t, repo, "alice", entity.RoleUser)

	require.NoError(t, svc.Delete(ctx, "alice"))

	_, err := svc.GetByUsername(ctx, "alice")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
