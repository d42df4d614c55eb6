// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourplaces/places-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) AddPlace(ctx context.Context, userID uuid.UUID, placeID uuid.UUID) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *UserStore) RemovePlace(ctx context.Context, userID uuid.UUID, placeID uuid.UUID) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

// PlaceStore is a mock implementation of model.PlaceStore.
type PlaceStore struct {
	mock.Mock
}

func (m *PlaceStore) Create(ctx context.Context, place model.Place) (model.Place, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceStore) GetByID(ctx context.Context, id uuid.UUID) (model.Place, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceStore) GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Place), args.Error(1)
}

func (m *PlaceStore) Update(ctx context.Context, place model.Place) (model.Place, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
