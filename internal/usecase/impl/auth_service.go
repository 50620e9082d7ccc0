package impl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"herbwise/internal/domain/entity"
	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/domain/repository"
	"herbwise/internal/domain/service"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"

	"github.com/google/uuid"
)

const avatarEndpoint = "https://api.dicebear.com/7.x/avataaars/svg"

type authService struct {
	userRepo repository.UserRepository
	tokenSvc service.TokenService
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewAuthService creates the simulated authentication flow. Any credentials
// are accepted; the identity is synthesized from the email address.
func NewAuthService(userRepo repository.UserRepository, tokenSvc service.TokenService) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Login accepts any email/password combination and issues fresh tokens. The
// display name falls back to the part of the email before the "@".
func (s *authService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	name, _, _ := strings.Cut(email, "@")

	return s.establish(ctx, name, email)
}

// Register creates an identity with the supplied display name.
func (s *authService) Register(ctx context.Context, name, email, password string) (*usecase.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.establish(ctx, name, email)
}

func (s *authService) establish(ctx context.Context, name, email string) (*usecase.AuthResult, error) {
	user := &entity.User{
		ID:        s.newID(),
		Email:     email,
		Name:      name,
		Avatar:    avatarEndpoint + "?seed=" + url.QueryEscape(email),
		CreatedAt: s.now(),
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}

	access, refresh, err := s.tokenSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Logout destroys the stored identity. Logging out an unknown user is a
// no-op.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "delete user")
	}

	return nil
}

// Profile returns the stored identity.
func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return user, nil
}
