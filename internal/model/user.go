package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
//
// AddPlace and RemovePlace mutate the user's owned-place set and are only
// ever called inside the transaction that also writes the place record, so
// the set always mirrors the places whose creator is this user.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	AddPlace(ctx context.Context, userID uuid.UUID, placeID uuid.UUID) error
	RemovePlace(ctx context.Context, userID uuid.UUID, placeID uuid.UUID) error
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Image        string
	Places       []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignUpParams contains parameters to register a user.
type SignUpParams struct {
	Name     string
	Email    string
	Password string
	Avatar   Upload
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	UserID uuid.UUID
	Email  string
	Token  string
}
