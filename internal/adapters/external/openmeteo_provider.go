package external

import (
	"context"
	"net/url"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const openMeteoTimeLayout = "2006-01-02T15:04"

// OpenMeteoProviderAdapter reads current air quality from the Open-Meteo air quality API.
// No API key is needed.
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type openMeteoResponse struct {
	Current struct {
		Time        string   `json:"time"`
		EuropeanAQI *float64 `json:"european_aqi"`
		PM10        *float64 `json:"pm10"`
		PM25        *float64 `json:"pm2_5"`
		NO2         *float64 `json:"nitrogen_dioxide"`
	} `json:"current"`
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://air-quality-api.open-meteo.com/v1"
	}
	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Client, params.Timeout),
		logger:  params.Logger,
	}
}

func (p *OpenMeteoProviderAdapter) GetCurrentAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(lat))
	query.Set("longitude", formatCoord(lon))
	query.Set("current", "european_aqi,pm10,pm2_5,nitrogen_dioxide")
	query.Set("timezone", "GMT")

	var resp openMeteoResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		service: "Open-Meteo",
		baseURL: p.baseURL,
		path:    "/air-quality",
		query:   query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Error {
		return nil, errors.NewExternalAPIError("Open-Meteo rejected the request: "+resp.Reason, nil)
	}

	observed := time.Now().UTC()
	if ts, err := time.Parse(openMeteoTimeLayout, resp.Current.Time); err == nil {
		observed = ts
	}

	return &ports.AirQualityData{
		EuropeanAQI: resp.Current.EuropeanAQI,
		PM25:        resp.Current.PM25,
		PM10:        resp.Current.PM10,
		NO2:         resp.Current.NO2,
		Provider:    p.GetProviderName(),
		ObservedAt:  observed,
	}, nil
}

func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "openmeteo"
}
