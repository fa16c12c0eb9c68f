package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Age          *int      `json:"age,omitempty"`
	Gender       *string   `json:"gender,omitempty"`
	Image        string    `json:"image"`
	About        string    `json:"about"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserProfile is the public projection of a user: safe to return to any
// authenticated caller. Credential fields never appear here.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Image     string    `json:"image"`
	About     string    `json:"about"`
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Age          *int
	Gender       *string
}

// UpdateProfileParams carries a partial profile edit. Nil fields are left
// untouched. Email and password are deliberately absent.
type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Age       *int
	Gender    *string
	Image     *string
	About     *string
}
