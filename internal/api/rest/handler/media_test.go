package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourplaces/places-server/internal/mocks"
	"github.com/yourplaces/places-server/internal/model"
	"github.com/yourplaces/places-server/internal/testutil"
)

func newMediaTestApp(storage MediaOpener) *fiber.App {
	h := NewMedia(storage, testutil.MakeNoopLogger())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/uploads/images/:filename", h.Serve)
	return app
}

func TestMedia_Serve(t *testing.T) {
	t.Parallel()

	storage := &mocks.MediaStore{}
	storage.On("Open", mock.Anything, "abc.png").
		Return(io.NopCloser(strings.NewReader("image-bytes")), nil)

	app := newMediaTestApp(storage)

	req := httptest.NewRequest(http.MethodGet, "/uploads/images/abc.png", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "image/png")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(body))
}

func TestMedia_Serve_MissingKey(t *testing.T) {
	t.Parallel()

	storage := &mocks.MediaStore{}
	storage.On("Open", mock.Anything, "gone.png").Return(nil, model.ErrNotFound)

	app := newMediaTestApp(storage)

	req := httptest.NewRequest(http.MethodGet, "/uploads/images/gone.png", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, "Could not find this route.", got["message"])
}
