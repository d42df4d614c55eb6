package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourplaces/places-server/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MediaStore is a mock implementation of model.MediaStore.
type MediaStore struct {
	mock.Mock
}

func (m *MediaStore) Save(ctx context.Context, upload model.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MediaStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MediaStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MediaStore) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// Geocoder is a mock implementation of model.Geocoder.
type Geocoder struct {
	mock.Mock
}

func (m *Geocoder) Geocode(ctx context.Context, address string) (model.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(model.Coordinates), args.Error(1)
}

// Hasher is a mock implementation of password.Hasher.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *Hasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
