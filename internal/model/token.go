package model

import "github.com/google/uuid"

// TokenManager generates and validates bearer tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (uuid.UUID, error)
}
