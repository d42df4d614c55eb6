package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlaceStore defines persistence operations for places.
type PlaceStore interface {
	Create(ctx context.Context, place Place) (Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (Place, error)
	GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]Place, error)
	Update(ctx context.Context, place Place) (Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Place represents a user-owned place record.
type Place struct {
	ID          uuid.UUID
	Title       string
	Description string
	Address     string
	Location    Coordinates
	Image       string
	Creator     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePlaceParams contains parameters to create a place.
type CreatePlaceParams struct {
	Title       string
	Description string
	Address     string
	Image       Upload
}

// UpdatePlaceParams contains the creator-mutable place fields.
type UpdatePlaceParams struct {
	Title       string
	Description string
}
