package external

import (
	"context"
	"net/url"
	"strings"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

// NominatimGeocoderAdapter implements the Geocoder port with the OpenStreetMap
// Nominatim reverse endpoint. Nominatim requires an identifying User-Agent.
type NominatimGeocoderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

type NominatimGeocoderParams struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Client    HTTPClient
	Logger    ports.Logger
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
	Error string `json:"error"`
}

func NewNominatimGeocoderAdapter(params NominatimGeocoderParams) *NominatimGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = "cool-assistant/1.0"
	}
	return &NominatimGeocoderAdapter{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    newHTTPClient(params.Client, params.Timeout),
		logger:    params.Logger,
	}
}

func (g *NominatimGeocoderAdapter) ReverseGeocode(ctx context.Context, lat, lon float64) (*ports.PlaceData, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", formatCoord(lat))
	query.Set("lon", formatCoord(lon))
	query.Set("zoom", "10")
	query.Set("accept-language", "en")

	var resp nominatimResponse
	err := getJSON(ctx, g.client, g.logger, jsonRequest{
		service: "Nominatim",
		baseURL: g.baseURL,
		path:    "/reverse",
		query:   query,
		headers: map[string]string{"User-Agent": g.userAgent},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Error != "" || resp.DisplayName == "" {
		return nil, errors.NewNotFoundError("no place found for the coordinates")
	}

	return &ports.PlaceData{
		DisplayName: resp.DisplayName,
		City:        firstNonEmpty(resp.Address.City, resp.Address.Town, resp.Address.Village, resp.Address.County, resp.Address.State),
		Country:     resp.Address.Country,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
