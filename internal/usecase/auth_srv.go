package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"
	"media-catalog/internal/dto/request"
	"media-catalog/internal/dto/response"
	"media-catalog/pkg/apperr"
	"media-catalog/pkg/mailer"
	"media-catalog/pkg/token"
	"media-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reservedUsername collides with the /users/me route and is refused at
// signup, in any letter case.
const reservedUsername = "me"

type AuthService interface {
	// Signup creates an account for a new (username, email) pair or
	// reissues the confirmation code for an existing one, then emails the
	// code. A delivery failure fails the whole operation.
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	// Token exchanges username + confirmation code for a signed access
	// token. Only the most recently issued code matches.
	Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	tokens *token.Manager
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	tokens *token.Manager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	if strings.EqualFold(req.Username, reservedUsername) {
		return nil, apperr.Validation("Validation failed", map[string]string{
			"Username": fmt.Sprintf("Username %q is reserved", reservedUsername),
		})
	}

	// An exact (username, email) match is a resend; a clash on only one of
	// the two belongs to someone else.
	user, err := s.repo.User.FindByUsernameAndEmail(ctx, req.Username, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user for signup", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to process signup", err)
	}

	code := utils.GenerateConfirmationCode()

	if user != nil {
		if err := s.repo.User.UpdateConfirmationCode(ctx, user.ID, code); err != nil {
			s.log.Error("Failed to reissue confirmation code",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, apperr.Wrap(apperr.KindInternal, "failed to process signup", err)
		}
	} else {
		user, err = s.createUser(ctx, req, code)
		if err != nil {
			return nil, err
		}
	}

	// Hard failure on purpose: silently succeeding without the code would
	// leave the account unreachable.
	if err := s.sendConfirmationCode(user.Email, user.Username, code); err != nil {
		s.log.Error("Failed to dispatch confirmation code",
			zap.Error(err), zap.String("email", user.Email))
		return nil, apperr.Wrap(apperr.KindDelivery, "failed to deliver confirmation code", err)
	}

	s.log.Info("Confirmation code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *authService) Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token request validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up user for token", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to process token request", err)
	}
	if user == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "user %s not found", req.Username)
	}

	// Exact integer comparison against the stored code only. A code from an
	// earlier signup request has been overwritten and always fails. No
	// lockout, no invalidation of the code on a failed attempt.
	if user.ConfirmationCode == nil || *user.ConfirmationCode != req.ConfirmationCode {
		s.log.Warn("Confirmation code mismatch", zap.String("username", req.Username))
		return nil, apperr.New(apperr.KindAuthentication, "invalid confirmation code")
	}

	signed, err := s.tokens.Mint(user.ID, user.Username, string(user.Role), user.IsSuperuser)
	if err != nil {
		s.log.Error("Failed to mint token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to issue token", err)
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.TokenResponse{Token: signed}, nil
}

func (s *authService) createUser(ctx context.Context, req *request.SignupRequest, code int) (*entity.User, error) {
	placeholder, err := utils.UnusablePassword()
	if err != nil {
		s.log.Error("Failed to generate placeholder credential", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create account", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     placeholder,
		Role:             entity.RoleUser,
		ConfirmationCode: &code,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperr.New(apperr.KindConflict, "username or email already taken")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create account", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return user, nil
}

func (s *authService) sendConfirmationCode(email, username string, code int) error {
	subject := "Your confirmation code"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour confirmation code is %d.\n\nExchange it for an access token at /api/v1/auth/token.\n",
		username, code,
	)
	return s.mail.Send(email, subject, body)
}
