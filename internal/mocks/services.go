package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourplaces/places-server/internal/model"
)

// AuthService is a mock implementation of the handler AuthService interface.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) SignUp(ctx context.Context, params model.SignUpParams) (model.AuthResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.AuthResult), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.AuthResult), args.Error(1)
}

// UserService is a mock implementation of the handler UserService interface.
type UserService struct {
	mock.Mock
}

func (m *UserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// PlaceService is a mock implementation of the handler PlaceService interface.
type PlaceService struct {
	mock.Mock
}

func (m *PlaceService) Create(ctx context.Context, callerID uuid.UUID, params model.CreatePlaceParams) (model.Place, error) {
	args := m.Called(ctx, callerID, params)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceService) GetByID(ctx context.Context, placeID uuid.UUID) (model.Place, error) {
	args := m.Called(ctx, placeID)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceService) GetByCreator(ctx context.Context, userID uuid.UUID) ([]model.Place, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Place), args.Error(1)
}

func (m *PlaceService) Update(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID, params model.UpdatePlaceParams) (model.Place, error) {
	args := m.Called(ctx, callerID, placeID, params)
	return args.Get(0).(model.Place), args.Error(1)
}

func (m *PlaceService) Delete(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID) error {
	args := m.Called(ctx, callerID, placeID)
	return args.Error(0)
}
