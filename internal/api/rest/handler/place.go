package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourplaces/places-server/internal/api/rest/reqctx"
	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// PlaceService defines place read and mutation operations.
type PlaceService interface {
	Create(ctx context.Context, callerID uuid.UUID, params model.CreatePlaceParams) (model.Place, error)
	GetByID(ctx context.Context, placeID uuid.UUID) (model.Place, error)
	GetByCreator(ctx context.Context, userID uuid.UUID) ([]model.Place, error)
	Update(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID, params model.UpdatePlaceParams) (model.Place, error)
	Delete(ctx context.Context, callerID uuid.UUID, placeID uuid.UUID) error
}

// Place handles HTTP endpoints for places.
type Place struct {
	placeService PlaceService
	urls         URLResolver
	logger       *logger.Logger
}

// NewPlace creates a new Place handler.
func NewPlace(placeService PlaceService, urls URLResolver, logger *logger.Logger) *Place {
	return &Place{
		placeService: placeService,
		urls:         urls,
		logger:       logger,
	}
}

// GetByID returns a single place.
func (h *Place) GetByID(c *fiber.Ctx) error {
	placeID, err := uuid.Parse(c.Params("pid"))
	if err != nil {
		return apperr.NewNotFound("Could not find a place for the provided id.")
	}

	place, err := h.placeService.GetByID(c.UserContext(), placeID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"place": newPlaceView(place, h.urls)})
}

// GetByUser returns all places created by a user.
func (h *Place) GetByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return apperr.NewNotFound("Could not find places for the provided user id.")
	}

	places, err := h.placeService.GetByCreator(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"places": newPlaceViews(places, h.urls)})
}

// Create creates a place from a multipart form with an image. The creator is
// the authenticated caller; a creator field in the form is ignored.
func (h *Place) Create(c *fiber.Ctx) error {
	callerID, ok := reqctx.UserID(c.UserContext())
	if !ok {
		return apperr.NewAuthentication("Authentication failed!")
	}

	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	place, err := h.placeService.Create(c.UserContext(), callerID, model.CreatePlaceParams{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Address:     c.FormValue("address"),
		Image:       image,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Place handler: place created",
		"place_id", place.ID,
		"creator", place.Creator)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"place": newPlaceView(place, h.urls)})
}

type updatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Update changes a place's title and description.
func (h *Place) Update(c *fiber.Ctx) error {
	callerID, ok := reqctx.UserID(c.UserContext())
	if !ok {
		return apperr.NewAuthentication("Authentication failed!")
	}

	placeID, err := uuid.Parse(c.Params("pid"))
	if err != nil {
		return apperr.NewNotFound("Could not find a place for the provided id.")
	}

	var req updatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}

	place, err := h.placeService.Update(c.UserContext(), callerID, placeID, model.UpdatePlaceParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"place": newPlaceView(place, h.urls)})
}

// Delete removes a place.
func (h *Place) Delete(c *fiber.Ctx) error {
	callerID, ok := reqctx.UserID(c.UserContext())
	if !ok {
		return apperr.NewAuthentication("Authentication failed!")
	}

	placeID, err := uuid.Parse(c.Params("pid"))
	if err != nil {
		return apperr.NewNotFound("Place not found.")
	}

	if err := h.placeService.Delete(c.UserContext(), callerID, placeID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Place deleted successfully."})
}
