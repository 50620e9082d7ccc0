package usecase

import (
	"context"

	"herbwise/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthResult bundles the signed-in identity with its session tokens.
type AuthResult struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// AuthUsecase holds the current signed-in identity. This is not a real
// authentication system: any credentials are accepted and an identity is
// synthesized from the email address.
type AuthUsecase interface {
	// Login signs a user in, accepting any email/password combination.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register creates an identity with the supplied display name.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Logout destroys the stored identity.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Profile returns the stored identity.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
