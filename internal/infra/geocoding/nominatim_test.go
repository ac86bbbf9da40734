package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"paseo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(endpoint string) *config.Config {
	return &config.Config{
		Geocoding: &config.GeocodingConfig{
			Enabled:  true,
			Endpoint: endpoint,
			Timeout:  2 * time.Second,
		},
	}
}

func TestNominatimResolver_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "1 Example Road, Taipei"}`))
	}))
	defer server.Close()

	resolver := NewResolver(newTestConfig(server.URL), newDiscardLogger())

	address, err := resolver.Resolve(context.Background(), 25.033, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, "1 Example Road, Taipei", address)
}

func TestNominatimResolver_CachesByRoundedCoordinates(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"display_name": "1 Example Road, Taipei"}`))
	}))
	defer server.Close()

	resolver := NewResolver(newTestConfig(server.URL), newDiscardLogger())
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, 25.03301, 121.56540)
	require.NoError(t, err)

	// Within the same 4-decimal cell, the cache answers.
	_, err = resolver.Resolve(ctx, 25.03304, 121.56543)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())

	// A different cell misses the cache.
	_, err = resolver.Resolve(ctx, 25.04000, 121.56540)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestNominatimResolver_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewResolver(newTestConfig(server.URL), newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), 25.033, 121.5654)
	require.Error(t, err)
}

func TestNominatimResolver_EmptyDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resolver := NewResolver(newTestConfig(server.URL), newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), 25.033, 121.5654)
	require.Error(t, err)
}

func TestNewResolver_Disabled(t *testing.T) {
	resolver := NewResolver(&config.Config{}, newDiscardLogger())

	address, err := resolver.Resolve(context.Background(), 25.033, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, "Lat: 25.033000, Lng: 121.565400", address)
}
