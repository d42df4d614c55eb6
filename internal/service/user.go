package service

import (
	"context"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// User serves user listing.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// List returns all users. Password hashes stay server-side; the HTTP layer
// maps users to a view that omits them.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, apperr.NewInternal("Fetching users failed, please try again later.")
	}

	return users, nil
}
