package repository

import (
	"context"

	"herbwise/internal/domain/entity"
	"herbwise/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no stored identity matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists the signed-in identities.
type UserRepository interface {
	// Save stores the identity, replacing any previous record for the user.
	Save(ctx context.Context, user *entity.User) error

	// FindByID retrieves a stored identity.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Delete removes the stored identity on sign-out.
	Delete(ctx context.Context, id uuid.UUID) error
}
