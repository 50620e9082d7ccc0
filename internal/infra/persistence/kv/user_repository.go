package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"

	"github.com/google/uuid"
)

const userKeyPrefix = "herbwise-user:"

// UserRepository persists signed-in identities, one key per user.
type UserRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewUserRepository creates the store-backed user repository.
func NewUserRepository(store repository.KVStore, logger *slog.Logger) repository.UserRepository {
	return &UserRepository{store: store, logger: logger}
}

// Save stores the identity, replacing any previous record.
func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal user")
	}

	return errors.Wrap(r.store.Set(ctx, userKeyPrefix+user.ID.String(), string(raw)), "save user")
}

// FindByID retrieves a stored identity. Malformed stored data is logged and
// treated as absent.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	raw, ok, err := r.store.Get(ctx, userKeyPrefix+id.String())
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.logger.Error("Corrupt user record, treating as absent",
			slog.String("userID", id.String()),
			slog.Any("error", err))

		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// Delete removes the stored identity on sign-out.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(r.store.Delete(ctx, userKeyPrefix+id.String()), "delete user")
}
