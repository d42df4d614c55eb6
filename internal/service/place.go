package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

const minDescriptionLength = 5

// Place orchestrates place mutations. It is the only component that writes
// across the user and place stores in one operation; every create and delete
// keeps the owner's place set and the place records consistent inside one
// transaction.
type Place struct {
	placeStore model.PlaceStore
	userStore  model.UserStore
	storage    model.MediaStore
	geocoder   model.Geocoder
	tx         model.TxManager
	logger     *logger.Logger
}

func NewPlace(
	placeStore model.PlaceStore,
	userStore model.UserStore,
	storage model.MediaStore,
	geocoder model.Geocoder,
	tx model.TxManager,
	logger *logger.Logger,
) *Place {
	return &Place{
		placeStore: placeStore,
		userStore:  userStore,
		storage:    storage,
		geocoder:   geocoder,
		tx:         tx,
		logger:     logger,
	}
}

func validateCreatePlace(params model.CreatePlaceParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if len(params.Description) < minDescriptionLength {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if strings.TrimSpace(params.Address) == "" {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if params.Image.Reader == nil || params.Image.Size == 0 {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	return nil
}

// Create runs the create-place flow: validate, geocode, load the acting
// user, store the image, then persist the place and link it to its owner as
// one transaction. Retryable steps run before any durable write; the stored
// image is removed again if the transaction fails.
func (s *Place) Create(ctx context.Context, callerID uuid.UUID, params model.CreatePlaceParams) (model.Place, error) {
	s.logger.Debug("Place service: creating place",
		"caller_id", callerID,
		"title", params.Title)

	if err := validateCreatePlace(params); err != nil {
		return model.Place{}, err
	}

	coords, err := s.geocoder.Geocode(ctx, params.Address)
	if errors.Is(err, model.ErrNoResults) {
		return model.Place{}, apperr.NewNotFound("No results found for the given address")
	}
	if err != nil {
		s.logger.Error("Place service: geocoding failed",
			"address", params.Address,
			"error", err.Error())
		return model.Place{}, apperr.NewUpstream("Geocoding failed, please try again later.")
	}

	user, err := s.userStore.GetByID(ctx, callerID)
	if errors.Is(err, model.ErrNotFound) {
		// A valid token for a user that no longer has a row. Should not
		// happen; log it loudly but answer like the original not-found case.
		s.logger.Error("Place service: authenticated user missing from store",
			"caller_id", callerID)
		return model.Place{}, apperr.NewNotFound("Could not find user for provided id")
	}
	if err != nil {
		s.logger.Error("Place service: failed to get user by id",
			"caller_id", callerID,
			"error", err.Error())
		return model.Place{}, apperr.NewInternal("Creating place failed, please try again.")
	}

	imageKey, err := s.storage.Save(ctx, params.Image)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedMediaType) {
			return model.Place{}, apperr.NewValidation("Invalid mime type!")
		}
		if errors.Is(err, model.ErrMediaTooLarge) {
			return model.Place{}, apperr.NewValidation("Uploaded file is too large.")
		}
		s.logger.Error("Place service: failed to store image",
			"caller_id", callerID,
			"error", err.Error())
		return model.Place{}, apperr.NewInternal("Creating place failed, please try again.")
	}

	now := time.Now()
	place := model.Place{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Address:     params.Address,
		Location:    coords,
		Image:       imageKey,
		Creator:     user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		savedPlace, err := s.placeStore.Create(ctx, place)
		if err != nil {
			return err
		}
		place = savedPlace
		return s.userStore.AddPlace(ctx, user.ID, place.ID)
	})
	if err != nil {
		s.logger.Error("Place service: create transaction failed",
			"caller_id", callerID,
			"error", err.Error())
		discardMedia(ctx, s.storage, s.logger, imageKey)
		return model.Place{}, apperr.NewInternal("Creating place failed, please try again.")
	}

	s.logger.Info("Place service: place created",
		"place_id", place.ID,
		"creator", user.ID)

	return place, nil
}

// GetByID returns a single place.
func (s *Place) GetByID(ctx context.Context, placeID uuid.UUID) (model.Place, error) {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Place{}, apperr.NewNotFound("Could not find a place for the provided id.")
	}
	if err != nil {
		s.logger.Error("Place service: failed to get place by id",
			"place_id", placeID,
			"error", err.Error())
		return model.Place{}, apperr.NewInternal("Something went wrong, could not find a place.")
	}

	return place, nil
}

// GetByCreator returns all places owned by a user.
func (s *Place) GetByCreator(ctx context.Context, userID uuid.UUID) ([]model.Place, error) {
	places, err := s.placeStore.GetByCreator(ctx, userID)
	if err != nil {
		s.logger.Error("Place service: failed to get places by creator",
			"user_id", userID,
			"error", err.Error())
		return nil, apperr.NewInternal("Fetching places failed, please try again later")
	}

	if len(places) == 0 {
		return nil, apperr.NewNotFound("Could not find places for the provided user id.")
	}

	return places, nil
}

// Update applies the creator-mutable fields. Only the place's creator may
// update it; no mutation is attempted otherwise.
func (s *Place) Update(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID, params model.UpdatePlaceParams) (model.Place, error) {
	if strings.TrimSpace(params.Title) == "" || len(params.Description) < minDescriptionLength {
		return model.Place{}, apperr.NewValidation("Invalid inputs passed, please check your data.")
	}

	place, err := s.placeStore.GetByID(ctx, placeID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Place{}, apperr.NewNotFound("Could not find a place for the provided id.")
	}
	if err != nil {
		s.logger.Error("Place service: failed to get place by id",
			"place_id", placeID,
			"error", err.Error())
		return model.Place{}, apperr.NewInternal("Something went wrong, could not update place.")
	}

	if place.Creator != callerID {
		return model.Place{}, apperr.NewAuthorization("You are not allowed to edit this place!")
	}

	place.Title = params.Title
	place.Description = params.Description

	place, err = s.placeStore.Update(ctx, place)
	if errors.Is(err, model.ErrNotFound) {
		// Deleted between the load and the write.
		return model.Place{}, apperr.NewNotFound("Could not find a place for the provided id.")
	}
	if err != nil {
		s.logger.Error("Place service: failed to update place",
			"place_id", placeID,
			"error", err.Error())
		return model.Place{}, apperr.NewInternal("Something went wrong, could not update place.")
	}

	s.logger.Info("Place service: place updated",
		"place_id", place.ID,
		"creator", place.Creator)

	return place, nil
}

// Delete removes a place and unlinks it from its owner in one transaction,
// then removes the image in the background.
func (s *Place) Delete(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID) error {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("Place not found.")
	}
	if err != nil {
		s.logger.Error("Place service: failed to get place by id",
			"place_id", placeID,
			"error", err.Error())
		return apperr.NewInternal("Something went wrong, could not delete place.")
	}

	if place.Creator != callerID {
		return apperr.NewAuthorization("You are not allowed to delete this place!")
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.placeStore.Delete(ctx, place.ID); err != nil {
			return err
		}
		return s.userStore.RemovePlace(ctx, place.Creator, place.ID)
	})
	if err != nil {
		s.logger.Error("Place service: delete transaction failed",
			"place_id", placeID,
			"error", err.Error())
		return apperr.NewInternal("Something went wrong, could not delete place.")
	}

	// The record deletion committed; the file is cleanup only.
	discardMedia(ctx, s.storage, s.logger, place.Image)

	s.logger.Info("Place service: place deleted",
		"place_id", place.ID,
		"creator", place.Creator)

	return nil
}
