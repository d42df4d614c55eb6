package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourplaces/places-server/internal/model"
)

func TestNominatim_Geocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1600 Amphitheatre Parkway", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"37.4224","lon":"-122.0842"}]`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, "places-server-test")
	coords, err := g.Geocode(context.Background(), "1600 Amphitheatre Parkway")
	require.NoError(t, err)
	assert.InDelta(t, 37.4224, coords.Lat, 1e-9)
	assert.InDelta(t, -122.0842, coords.Lng, 1e-9)
}

func TestNominatim_Geocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, "places-server-test")
	_, err := g.Geocode(context.Background(), "nowhere at all")
	require.True(t, errors.Is(err, model.ErrNoResults))
}

func TestNominatim_Geocode_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, "places-server-test")
	_, err := g.Geocode(context.Background(), "anywhere")
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrNoResults))
}

func TestNominatim_Geocode_MalformedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"not-a-number","lon":"0"}]`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, "places-server-test")
	_, err := g.Geocode(context.Background(), "anywhere")
	require.Error(t, err)
}

func TestNominatim_Geocode_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewNominatim(srv.URL, "places-server-test")
	_, err := g.Geocode(ctx, "anywhere")
	require.Error(t, err)
}
