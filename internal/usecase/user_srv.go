package usecase

import (
	"context"
	"strings"
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

type UserService interface {
	// Admin surface, keyed by username.
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Update(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, username string) error

	// Self-service surface.
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	if strings.EqualFold(req.Username, reservedUsername) {
		return nil, apperr.Validation("Validation failed", map[string]string{
			"Username": "Username \"me\" is reserved",
		})
	}

	// Admin-created accounts still authenticate by confirmation code, so the
	// credential is the same unusable placeholder as on signup.
	placeholder, err := utils.UnusablePassword()
	if err != nil {
		s.log.Error("Failed to generate placeholder credential", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}

	role := entity.RoleUser
	if req.Role != nil {
		role = entity.UserRole(*req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: placeholder,
		Bio:          req.Bio,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.New(apperr.KindConflict, "username or email already taken")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list users", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list users", err)
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *userService) Update(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.New(apperr.KindConflict, "email already taken")
		}
		s.log.Error("Failed to update user", zap.Error(err), zap.String("username", username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update user", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("username", username))
		return apperr.Wrap(apperr.KindInternal, "failed to delete user", err)
	}

	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.New(apperr.KindConflict, "email already taken")
		}
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update profile", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) findByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find user", err)
	}
	if user == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "user %s not found", username)
	}

	return user, nil
}

func (s *userService) findByID(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid user ID %s", userID)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to find user", err)
	}
	if user == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "user %s not found", userID)
	}

	return user, nil
}
