package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/mocks"
	"github.com/yourplaces/places-server/internal/model"
	"github.com/yourplaces/places-server/internal/testutil"
)

func TestUser_List(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		userStore := &mocks.UserStore{}
		userStore.On("GetAll", mock.Anything).Return([]model.User{
			{ID: uuid.New(), Name: "Ann"},
			{ID: uuid.New(), Name: "Ben"},
		}, nil)

		s := NewUser(userStore, testutil.MakeNoopLogger())

		users, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("store failure", func(t *testing.T) {
		userStore := &mocks.UserStore{}
		userStore.On("GetAll", mock.Anything).Return(nil, errors.New("connection lost"))

		s := NewUser(userStore, testutil.MakeNoopLogger())

		_, err := s.List(context.Background())
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Status)
		assert.Equal(t, "Fetching users failed, please try again later.", appErr.Message)
	})
}
