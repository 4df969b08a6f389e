// Package geocode resolves coordinates into human-readable addresses for
// clock-in/clock-out records. Lookups are best-effort: a clock operation
// must never fail because the location service is slow or down.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	FallbackUnavailable = "Location service unavailable"
	FallbackUnknown     = "Unknown"
)

type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) string
}

// Nominatim talks to an OSM Nominatim endpoint. Responses are bounded by the
// configured timeout and any failure degrades to a placeholder string.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Client    *http.Client
}

func NewNominatim(baseURL string, timeoutSeconds int) *Nominatim {
	return &Nominatim{
		BaseURL:   baseURL,
		UserAgent: "shift_management_system",
		Timeout:   time.Duration(timeoutSeconds) * time.Second,
		Client:    &http.Client{},
	}
}

func (n *Nominatim) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	ctx, cancel := context.WithTimeout(ctx, n.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return FallbackUnavailable
	}
	req.Header.Set("User-Agent", n.UserAgent)

	resp, err := n.Client.Do(req)
	if err != nil {
		return FallbackUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackUnavailable
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return FallbackUnavailable
	}
	if payload.DisplayName == "" {
		return FallbackUnknown
	}
	return payload.DisplayName
}
