// Package geocoding provides the reverse geocoding implementation backed by a
// Nominatim-compatible API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"paseo/config"
	"paseo/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultGeocodingTimeout = 5 * time.Second

// nominatimResolver resolves coordinates to addresses through the Nominatim
// reverse API, with an in-memory cache. Nearby positions share a cache entry:
// the key rounds coordinates to four decimals (roughly 11 meters).
type nominatimResolver struct {
	endpoint   string
	language   string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	cache map[string]string
}

// disabledResolver serves the coordinate fallback when geocoding is off.
type disabledResolver struct{}

func (disabledResolver) Resolve(_ context.Context, lat, lng float64) (string, error) {
	return service.CoordinateAddress(lat, lng), nil
}

// NewResolver creates a GeocodingResolver based on configuration.
func NewResolver(cfg *config.Config, logger *slog.Logger) service.GeocodingResolver {
	if cfg.Geocoding == nil || !cfg.Geocoding.Enabled || cfg.Geocoding.Endpoint == "" {
		logger.Info("Geocoding disabled, addresses fall back to coordinates")

		return disabledResolver{}
	}

	timeout := cfg.Geocoding.Timeout
	if timeout <= 0 {
		timeout = defaultGeocodingTimeout
	}

	return &nominatimResolver{
		endpoint: cfg.Geocoding.Endpoint,
		language: cfg.Geocoding.Language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		cache:  make(map[string]string),
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Resolve maps coordinates to a display address.
func (r *nominatimResolver) Resolve(ctx context.Context, lat, lng float64) (string, error) {
	key := cacheKey(lat, lng)

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	address, err := r.fetch(ctx, lat, lng)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[key] = address
	r.mu.Unlock()

	return address, nil
}

func (r *nominatimResolver) fetch(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(lat, 'f', 7, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', 7, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if r.language != "" {
		req.Header.Set("Accept-Language", r.language)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("geocoder returned non-success status: %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.WithStack(err)
	}

	if decoded.DisplayName == "" {
		return "", errors.New("geocoder returned no display name")
	}

	return decoded.DisplayName, nil
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lng)
}
