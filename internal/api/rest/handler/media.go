package handler

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// MediaOpener streams stored uploads by key.
type MediaOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Media serves uploaded images.
type Media struct {
	storage MediaOpener
	logger  *logger.Logger
}

// NewMedia creates a new Media handler.
func NewMedia(storage MediaOpener, logger *logger.Logger) *Media {
	return &Media{storage: storage, logger: logger}
}

// Serve streams a stored image to the client.
func (h *Media) Serve(c *fiber.Ctx) error {
	key := c.Params("filename")

	object, err := h.storage.Open(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperr.NewNotFound("Could not find this route.")
		}
		h.logger.Error("Media handler: failed to open object",
			"key", key,
			"error", err.Error())
		return apperr.NewInternal("An unknown error occurred!")
	}

	if ext := strings.TrimPrefix(filepath.Ext(key), "."); ext != "" {
		c.Type(ext)
	}
	return c.SendStream(object)
}
