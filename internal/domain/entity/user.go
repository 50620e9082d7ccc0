package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the signed-in identity. Credentials are not verified in this
// system; a user record is synthesized on login or registration and only
// gates access to checkout and order history.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
